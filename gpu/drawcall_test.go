package gpu

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/chromix"
)

func testBlobs(n int) []chromix.Blob {
	blobs := make([]chromix.Blob, n)
	for i := range blobs {
		blobs[i] = chromix.Blob{
			Position: chromix.Pt(float64(i)*10, float64(i)*5),
			Color:    chromix.RGB{R: 1, G: 0.5, B: 0.25},
			Radius:   float64(i + 1),
		}
	}
	return blobs
}

func TestBuildDrawCall(t *testing.T) {
	c := chromix.NewCompositor()
	dc := BuildDrawCall(testBlobs(6), c)

	if dc.Count != 6 {
		t.Errorf("Count = %d, want 6", dc.Count)
	}
	if dc.Threshold != float32(chromix.DefaultThreshold) {
		t.Errorf("Threshold = %v, want %v", dc.Threshold, chromix.DefaultThreshold)
	}
	if dc.Gamma != float32(chromix.DefaultGamma) {
		t.Errorf("Gamma = %v, want %v", dc.Gamma, chromix.DefaultGamma)
	}
	if dc.Solid {
		t.Error("Solid = true, want false by default")
	}

	// Radii pack four to a vec4 slot: blob 5 lands in slot 1, lane 1.
	if got := dc.Radii[1][1]; got != 6 {
		t.Errorf("Radii[1][1] = %v, want 6", got)
	}
	if got := dc.Positions[3]; got != [4]float32{30, 15, 0, 0} {
		t.Errorf("Positions[3] = %v, want {30, 15, 0, 0}", got)
	}
}

func TestBuildDrawCallTruncates(t *testing.T) {
	c := chromix.NewCompositor()
	dc := BuildDrawCall(testBlobs(MaxBlobs+7), c)
	if dc.Count != MaxBlobs {
		t.Errorf("Count = %d, want cap %d", dc.Count, MaxBlobs)
	}
}

func TestDrawCallPackLayout(t *testing.T) {
	c := chromix.NewCompositor(chromix.WithSolidFill(true))
	dc := BuildDrawCall(testBlobs(2), c)
	buf := dc.Pack()

	if len(buf) != UniformBufferSize {
		t.Fatalf("packed size = %d, want %d", len(buf), UniformBufferSize)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	// Blob 1 position vec4 starts at byte 16.
	if got := f32(16); got != 10 {
		t.Errorf("position[1].x = %v, want 10", got)
	}
	// Colors start after the 20 position slots.
	colorBase := MaxBlobs * 16
	if got := f32(colorBase); got != 1 {
		t.Errorf("color[0].r = %v, want 1", got)
	}
	if got := f32(colorBase + 12); got != 1 {
		t.Errorf("color[0].a = %v, want 1", got)
	}
	// Radii start after the color slots.
	radiiBase := colorBase + MaxBlobs*16
	if got := f32(radiiBase); got != 1 {
		t.Errorf("radius[0] = %v, want 1", got)
	}
	if got := f32(radiiBase + 4); got != 2 {
		t.Errorf("radius[1] = %v, want 2", got)
	}

	// The meta vec4 is last: count, threshold, gamma, solid flag.
	metaBase := radiiBase + (MaxBlobs/4)*16
	if got := f32(metaBase); got != 2 {
		t.Errorf("meta.count = %v, want 2", got)
	}
	if got := f32(metaBase + 4); got != float32(chromix.DefaultThreshold) {
		t.Errorf("meta.threshold = %v, want %v", got, chromix.DefaultThreshold)
	}
	if got := f32(metaBase + 8); got != float32(chromix.DefaultGamma) {
		t.Errorf("meta.gamma = %v, want %v", got, chromix.DefaultGamma)
	}
	if got := f32(metaBase + 12); got != 1 {
		t.Errorf("meta.solid = %v, want 1", got)
	}
	if metaBase+16 != len(buf) {
		t.Errorf("meta vec4 ends at %d, want buffer end %d", metaBase+16, len(buf))
	}
}

func TestShaderSource(t *testing.T) {
	src := ShaderSource()
	if src == "" {
		t.Fatal("embedded shader source is empty")
	}
	for _, sym := range []string{"vs_main", "fs_main", "positions", "radii"} {
		if !strings.Contains(src, sym) {
			t.Errorf("shader source missing %q", sym)
		}
	}
}
