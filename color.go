package chromix

import (
	"fmt"
	"image/color"
	"math"
)

// RGB represents an sRGB paint color with components in the range [0, 1].
// It is the color carried by a Blob and produced by sampling; coverage alpha
// only appears on the rendered raster, never on the model.
type RGB struct {
	R, G, B float64
}

// Common paint colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{1, 1, 1}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	Yellow  = RGB{1, 1, 0}
	Cyan    = RGB{0, 1, 1}
	Magenta = RGB{1, 0, 1}
)

// Clamp restricts every component to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// Lerp performs linear interpolation between two colors in sRGB space.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Linear removes the gamma encoding from every component, returning the
// color in linear light. Mixing in linear space avoids the muddy results of
// naive sRGB averaging.
func (c RGB) Linear(gamma float64) RGB {
	return RGB{
		R: math.Pow(c.R, gamma),
		G: math.Pow(c.G, gamma),
		B: math.Pow(c.B, gamma),
	}
}

// Encoded re-applies gamma encoding to a linear-light color and clamps the
// result to [0, 1].
func (c RGB) Encoded(gamma float64) RGB {
	inv := 1 / gamma
	return RGB{
		R: clamp01(math.Pow(c.R, inv)),
		G: clamp01(math.Pow(c.G, inv)),
		B: clamp01(math.Pow(c.B, inv)),
	}
}

// Hex formats the color as "#rrggbb". The hex representation quantizes each
// channel to 8 bits; this is the accepted loss at the persistence boundary.
func (c RGB) Hex() string {
	cc := c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(cc.R*255)),
		uint8(math.Round(cc.G*255)),
		uint8(math.Round(cc.B*255)))
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" color string. The short "#RGB"
// form is accepted as well. Returns an error for any other shape so callers
// can skip malformed persisted records individually.
func ParseHex(s string) (RGB, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return RGB{}, fmt.Errorf("chromix: invalid hex color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return RGB{}, fmt.Errorf("chromix: invalid hex color %q", s)
		}
	default:
		return RGB{}, fmt.Errorf("chromix: invalid hex color %q", s)
	}

	return RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// parseHex is a helper for hex parsing. Returns false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// RGBA is a raster pixel color: an RGB paint value plus coverage alpha.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// WithAlpha attaches a coverage alpha to a paint color.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
