package chromix

import (
	"golang.org/x/image/draw"
)

// DefaultResolution is the raster sampling step: the field is evaluated
// every N pixels and upsampled to full size.
const DefaultResolution = 3

// Renderer rasterizes a blob list into a Pixmap by evaluating the color
// field on a coarse grid and upsampling. Rendering is synchronous and pure;
// a render superseded by a newer request is simply discarded by the caller,
// so partial results are never observable.
type Renderer struct {
	compositor *Compositor
	resolution int
	smooth     bool
	passes     bool
}

// NewRenderer creates a renderer with its own compositor built from the
// same option list.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		compositor: NewCompositor(opts...),
		resolution: o.resolution,
		smooth:     o.smooth,
		passes:     o.passes,
	}
}

// Compositor returns the renderer's compositor.
func (r *Renderer) Compositor() *Compositor { return r.compositor }

// Resolution returns the sampling step in pixels.
func (r *Renderer) Resolution() int { return r.resolution }

// Render rasterizes the blob list into a width×height pixmap. Pixels whose
// summed influence reaches the render threshold receive the blended color
// with soft (min(1, field)) or solid alpha; everything else stays
// transparent.
func (r *Renderer) Render(blobs []Blob, width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return NewPixmap(0, 0)
	}

	res := r.resolution
	if res < 1 {
		res = 1
	}

	gridW := (width + res - 1) / res
	gridH := (height + res - 1) / res
	coarse := NewPixmap(gridW, gridH)

	for gy := 0; gy < gridH; gy++ {
		for gx := 0; gx < gridW; gx++ {
			p := Pt(float64(gx*res), float64(gy*res))
			s := r.compositor.SampleAt(blobs, p)
			if !s.Covered {
				continue
			}
			coarse.SetPixel(gx, gy, s.Color.WithAlpha(s.Alpha))
		}
	}

	var out *Pixmap
	if res == 1 {
		out = coarse
	} else {
		out = NewPixmap(width, height)
		scaler := draw.Interpolator(draw.NearestNeighbor)
		if r.smooth {
			scaler = draw.ApproxBiLinear
		}
		scaler.Scale(out, out.Bounds(), coarse, coarse.Bounds(), draw.Src, nil)
	}

	if r.passes {
		out = presentationComposite(out)
	}
	return out
}
