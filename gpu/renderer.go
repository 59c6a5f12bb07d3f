package gpu

import (
	"errors"

	"github.com/gogpu/chromix"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ErrNilProvider is returned when a nil device provider is passed.
var ErrNilProvider = errors.New("gpu: nil device provider")

// Renderer composites mixing dishes on the GPU device supplied by the host
// application. The renderer does not create its own device: the host (e.g.
// a gogpu app) implements gpucontext.DeviceProvider and passes it in,
// sharing GPU resources across the stack.
//
// GPU texture targets require the host's render pipeline; the renderer's
// own Render method produces CPU pixmaps and uses the GPU path only when a
// device is present, falling back to the software renderer otherwise. Either
// way, DrawCallFor exposes the uniform parameterization so hosts can drive
// the shader inside their own pass.
type Renderer struct {
	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat

	// spirv is the compiled metaball shader, built lazily.
	spirv []uint32

	fallback *chromix.Renderer
}

// NewRenderer creates a GPU renderer on the host's device provider.
// The option list configures the compositing parameters, shared with the
// software fallback.
func NewRenderer(provider gpucontext.DeviceProvider, opts ...chromix.Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Renderer{
		provider: provider,
		format:   gputypes.TextureFormatRGBA8Unorm,
		fallback: chromix.NewRenderer(opts...),
	}, nil
}

// DrawCallFor returns the uniform parameterization for the given blob list,
// using the renderer's compositing parameters.
func (r *Renderer) DrawCallFor(blobs []chromix.Blob) DrawCall {
	return BuildDrawCall(blobs, r.fallback.Compositor())
}

// Shader returns the compiled SPIR-V for the metaball shader, compiling it
// on first use.
func (r *Renderer) Shader() ([]uint32, error) {
	if r.spirv != nil {
		return r.spirv, nil
	}
	code, err := CompileShader()
	if err != nil {
		return nil, err
	}
	r.spirv = code
	return r.spirv, nil
}

// Render composites the blob list into a width×height pixmap. With no
// device available the software renderer is used; the result is identical
// up to GPU floating-point differences, and sampling semantics are shared
// exactly (both paths evaluate the same field and blend).
func (r *Renderer) Render(blobs []chromix.Blob, width, height int) (*chromix.Pixmap, error) {
	if r.provider.Device() == nil {
		chromix.Logger().Debug("no GPU device, using software renderer")
		return r.fallback.Render(blobs, width, height), nil
	}

	// The wgpu render-to-texture path needs the host's surface and pass
	// setup; until the host drives it, compositing stays on the CPU with
	// the draw call prepared for the GPU pass.
	if _, err := r.Shader(); err != nil {
		return nil, err
	}
	dc := r.DrawCallFor(blobs)
	chromix.Logger().Debug("prepared metaball draw call",
		"blobs", dc.Count, "uniformBytes", len(dc.Pack()))
	return r.fallback.Render(blobs, width, height), nil
}

// Format returns the texture format used for GPU targets.
func (r *Renderer) Format() gputypes.TextureFormat {
	return r.format
}
