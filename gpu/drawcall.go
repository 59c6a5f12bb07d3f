package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/chromix"
)

// MaxBlobs is the uniform-block capacity of the metaball shader. Blob lists
// beyond it are truncated with a warning.
const MaxBlobs = 20

// UniformBufferSize is the packed byte size of a DrawCall:
// 20 position vec4s + 20 color vec4s + 5 radius vec4s + 1 meta vec4.
const UniformBufferSize = (MaxBlobs + MaxBlobs + MaxBlobs/4 + 1) * 16

// DrawCall is the complete parameterization of one mixing-dish composite:
// everything the metaball shader needs, laid out to match its uniform
// block. Positions and colors occupy one vec4 slot each (uniform arrays
// have 16-byte stride); radii pack four to a slot.
type DrawCall struct {
	Positions [MaxBlobs][4]float32
	Colors    [MaxBlobs][4]float32
	Radii     [MaxBlobs / 4][4]float32

	// Count is the number of live blob entries.
	Count uint32

	// Threshold is the coverage threshold.
	Threshold float32

	// Gamma is the blend gamma.
	Gamma float32

	// Solid forces hard-edged alpha once covered.
	Solid bool
}

// BuildDrawCall packs a blob list and the compositor parameters into a draw
// call. Blobs beyond MaxBlobs are dropped with a warning; the field
// degrades rather than erroring.
func BuildDrawCall(blobs []chromix.Blob, c *chromix.Compositor) DrawCall {
	n := len(blobs)
	if n > MaxBlobs {
		chromix.Logger().Warn("draw call truncated",
			"blobs", len(blobs), "max", MaxBlobs)
		n = MaxBlobs
	}

	dc := DrawCall{
		Count:     uint32(n),
		Threshold: float32(c.Threshold()),
		Gamma:     float32(c.Gamma()),
		Solid:     c.Solid(),
	}
	for i := 0; i < n; i++ {
		b := blobs[i]
		dc.Positions[i] = [4]float32{float32(b.Position.X), float32(b.Position.Y), 0, 0}
		dc.Colors[i] = [4]float32{float32(b.Color.R), float32(b.Color.G), float32(b.Color.B), 1}
		dc.Radii[i/4][i%4] = float32(b.Radius)
	}
	return dc
}

// Pack serializes the draw call into the byte layout of the shader's
// uniform block (little-endian IEEE 754, vec4 stride).
func (d *DrawCall) Pack() []byte {
	buf := make([]byte, 0, UniformBufferSize)
	for i := range d.Positions {
		buf = appendVec4(buf, d.Positions[i])
	}
	for i := range d.Colors {
		buf = appendVec4(buf, d.Colors[i])
	}
	for i := range d.Radii {
		buf = appendVec4(buf, d.Radii[i])
	}

	solid := float32(0)
	if d.Solid {
		solid = 1
	}
	buf = appendVec4(buf, [4]float32{float32(d.Count), d.Threshold, d.Gamma, solid})
	return buf
}

func appendVec4(buf []byte, v [4]float32) []byte {
	for _, f := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
