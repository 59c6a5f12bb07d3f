package chromix

import (
	"fmt"
	"math"
)

// influenceRadiusScale extends a blob's influence field to three times its
// visible radius for the quintic falloff. The WGSL shader in gpu/ hardcodes
// the same factor.
const influenceRadiusScale = 3.0

// Polynomial falloff constants. The polynomial variant evaluates the field
// in a normalized space where every blob is rescaled to idealRadius; the
// field then decays to zero over falloffMargin beyond it.
const (
	idealRadius   = 0.2
	falloffMargin = 0.3
)

// Falloff selects the influence function mapping distance from a blob center
// to a scalar contribution in [0, 1]. Both variants are monotonically
// non-increasing in distance and reach exactly zero at their cutoff.
type Falloff int

const (
	// FalloffQuintic is the default: a quintic smoothstep
	// 1 - t³(t(6t-15)+10) over t = distance/(3·radius), zero beyond
	// 3·radius.
	FalloffQuintic Falloff = iota

	// FalloffPolynomial is the Wyvill-style polynomial
	// 1 - 4d⁶/9b⁶ + 17d⁴/9b⁴ - 22d²/9b² with d the distance rescaled by
	// idealRadius/radius and b = idealRadius + falloffMargin.
	FalloffPolynomial
)

// String returns the configuration name of the falloff.
func (f Falloff) String() string {
	switch f {
	case FalloffQuintic:
		return "quintic"
	case FalloffPolynomial:
		return "polynomial"
	default:
		return fmt.Sprintf("Falloff(%d)", int(f))
	}
}

// ParseFalloff parses a falloff name as used in configuration files.
func ParseFalloff(name string) (Falloff, error) {
	switch name {
	case "quintic", "":
		return FalloffQuintic, nil
	case "polynomial", "wyvill":
		return FalloffPolynomial, nil
	default:
		return 0, fmt.Errorf("chromix: unknown falloff %q", name)
	}
}

// Influence computes the blob's scalar contribution at the given distance
// from its center. The result is in [0, 1], non-increasing in distance, and
// exactly zero at and beyond the cutoff. A non-positive radius does not
// divide by zero: the distance scale factor degrades to 1.0.
func (f Falloff) Influence(distance, radius float64) float64 {
	switch f {
	case FalloffPolynomial:
		return polynomialInfluence(distance, radius)
	default:
		return quinticInfluence(distance, radius)
	}
}

// Cutoff returns the distance at and beyond which Influence is exactly zero
// for the given radius. Used by raster bounds culling and the GPU shader.
func (f Falloff) Cutoff(radius float64) float64 {
	switch f {
	case FalloffPolynomial:
		scale := idealRadius / radius
		if radius <= 0 {
			scale = 1.0
		}
		return (idealRadius + falloffMargin) / scale
	default:
		r := radius * influenceRadiusScale
		if r <= 0 {
			return 1.0
		}
		return r
	}
}

func quinticInfluence(distance, radius float64) float64 {
	r := radius * influenceRadiusScale
	if r <= 0 {
		r = 1.0
	}
	t := distance / r
	if t >= 1 {
		return 0
	}
	if t < 0 {
		t = 0
	}
	v := 1 - t*t*t*(t*(t*6-15)+10)
	return math.Max(0, v)
}

func polynomialInfluence(distance, radius float64) float64 {
	scale := idealRadius / radius
	if radius <= 0 {
		scale = 1.0
	}
	d := distance * scale
	b := idealRadius + falloffMargin
	if d > b {
		return 0
	}

	d2 := d * d
	b2 := b * b
	d4 := d2 * d2
	b4 := b2 * b2
	d6 := d4 * d2
	b6 := b4 * b2

	v := 1 - 4*d6/(9*b6) + 17*d4/(9*b4) - 22*d2/(9*b2)
	return math.Max(0, v)
}
