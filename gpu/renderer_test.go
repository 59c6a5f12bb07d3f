package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/chromix"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockProvider implements gpucontext.DeviceProvider for testing. A nil
// device simulates a host without GPU access.
type mockProvider struct {
	device gpucontext.Device
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

func TestNewRendererNilProvider(t *testing.T) {
	if _, err := NewRenderer(nil); !errors.Is(err, ErrNilProvider) {
		t.Errorf("NewRenderer(nil) error = %v, want ErrNilProvider", err)
	}
}

func TestRendererSoftwareFallback(t *testing.T) {
	r, err := NewRenderer(&mockProvider{}, chromix.WithResolution(1))
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	blobs := []chromix.Blob{{Position: chromix.Pt(25, 25), Color: chromix.Red, Radius: 10}}
	pm, err := r.Render(blobs, 50, 50)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if pm.Width() != 50 || pm.Height() != 50 {
		t.Fatalf("rendered size = %dx%d, want 50x50", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(25, 25); got.A == 0 {
		t.Error("blob center transparent in fallback render")
	}
}

func TestRendererDrawCallFor(t *testing.T) {
	r, err := NewRenderer(&mockProvider{}, chromix.WithSolidFill(true))
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	dc := r.DrawCallFor([]chromix.Blob{{Position: chromix.Pt(1, 2), Color: chromix.Red, Radius: 3}})
	if dc.Count != 1 {
		t.Errorf("Count = %d, want 1", dc.Count)
	}
	if !dc.Solid {
		t.Error("draw call lost the solid-fill setting")
	}
}

func TestRendererFormat(t *testing.T) {
	r, err := NewRenderer(&mockProvider{})
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	if got := r.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", got)
	}
}
