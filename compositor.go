package chromix

import (
	"gonum.org/v1/gonum/floats"
)

// Default compositor parameters.
const (
	// DefaultThreshold is the minimum summed influence for a point to be
	// considered painted when rendering a raster.
	DefaultThreshold = 0.5

	// DefaultSampleEpsilon is the minimum summed influence for point
	// sampling. Picking is deliberately more permissive than rendering so
	// colors can be sampled from the soft fringe of the painted region.
	DefaultSampleEpsilon = 0.01

	// DefaultGamma is the sRGB transfer exponent used for linear-space
	// blending.
	DefaultGamma = 2.2

	// DefaultMixingRadius extends each blob's pick reach beyond its visible
	// radius when pick softness is enabled.
	DefaultMixingRadius = 60.0
)

// influenceEpsilon is the contribution below which a blob is skipped
// entirely. Keeps far-away blobs from entering the weight set.
const influenceEpsilon = 1e-9

// Sample is the result of evaluating the color field at one point.
type Sample struct {
	// Field is the summed influence of all blobs at the point.
	Field float64

	// Color is the blended sRGB color. Only meaningful when Covered.
	Color RGB

	// Alpha is the raster opacity at the point: min(1, Field) in soft
	// mode, forced to 1 in solid mode. Zero when not covered.
	Alpha float64

	// Covered reports whether Field reached the render threshold.
	Covered bool
}

// Compositor aggregates blob influences at a point and produces a blended
// sRGB color via linear-space weighting. It is a pure function of its
// configuration and inputs: identical blob lists and points always yield
// bit-for-bit identical results.
type Compositor struct {
	falloff       Falloff
	threshold     float64
	sampleEpsilon float64
	gamma         float64
	solid         bool
	pickSoft      bool
	mixingRadius  float64
}

// NewCompositor creates a compositor with the default quintic falloff,
// render threshold 0.5, sample epsilon 0.01 and gamma 2.2.
func NewCompositor(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{
		falloff:       o.falloff,
		threshold:     o.threshold,
		sampleEpsilon: o.sampleEpsilon,
		gamma:         o.gamma,
		solid:         o.solid,
		pickSoft:      o.pickSoft,
		mixingRadius:  o.mixingRadius,
	}
}

// Falloff returns the influence function in use.
func (c *Compositor) Falloff() Falloff { return c.falloff }

// Threshold returns the render coverage threshold.
func (c *Compositor) Threshold() float64 { return c.threshold }

// SampleEpsilon returns the point-sampling coverage threshold.
func (c *Compositor) SampleEpsilon() float64 { return c.sampleEpsilon }

// Gamma returns the blend gamma.
func (c *Compositor) Gamma() float64 { return c.gamma }

// Solid reports whether rendered coverage uses hard-edged alpha.
func (c *Compositor) Solid() bool { return c.solid }

// PickSoftness reports whether point sampling uses the widened pick falloff
// instead of the render field.
func (c *Compositor) PickSoftness() bool { return c.pickSoft }

// FieldAt computes the summed influence of all blobs at p.
func (c *Compositor) FieldAt(blobs []Blob, p Point) float64 {
	var field float64
	for i := range blobs {
		w := c.falloff.Influence(blobs[i].Position.Distance(p), blobs[i].Radius)
		if w <= influenceEpsilon {
			continue
		}
		field += w
	}
	return field
}

// SampleAt evaluates the color field at p for raster rendering, using the
// render threshold. The returned Sample carries the blended color, the soft
// or solid alpha, and whether the point is covered at all.
func (c *Compositor) SampleAt(blobs []Blob, p Point) Sample {
	field, mixed, ok := c.blend(blobs, p, c.threshold)
	s := Sample{Field: field}
	if !ok {
		return s
	}
	s.Color = mixed
	s.Covered = true
	if c.solid {
		s.Alpha = 1
	} else {
		s.Alpha = clamp01(field)
	}
	return s
}

// MixedColorAt samples the blended color at p using the permissive sampling
// epsilon. It reports ok=false when the summed influence is below the
// epsilon — "no sample available", not a fault.
//
// With pick softness enabled, sampling uses a separate cubic falloff with
// squared weights reaching mixingRadius beyond each blob's visible radius,
// so colors can be picked from a wider ring than the rendered field covers.
func (c *Compositor) MixedColorAt(blobs []Blob, p Point) (RGB, bool) {
	if c.pickSoft {
		return c.pickBlend(blobs, p)
	}
	_, mixed, ok := c.blend(blobs, p, c.sampleEpsilon)
	return mixed, ok
}

// blend gathers per-blob influences at p, checks the summed field against
// the given threshold, and if covered produces the normalized linear-space
// weighted blend of the contributing colors.
func (c *Compositor) blend(blobs []Blob, p Point, threshold float64) (float64, RGB, bool) {
	weights := make([]float64, 0, len(blobs))
	colors := make([]RGB, 0, len(blobs))

	for i := range blobs {
		w := c.falloff.Influence(blobs[i].Position.Distance(p), blobs[i].Radius)
		if w <= influenceEpsilon {
			continue
		}
		weights = append(weights, w)
		colors = append(colors, blobs[i].Color)
	}

	field := floats.Sum(weights)
	if field < threshold || field <= 0 {
		return field, RGB{}, false
	}
	return field, c.mixColors(weights, colors, field), true
}

// pickBlend samples with the widened cubic pick falloff and squared weights.
func (c *Compositor) pickBlend(blobs []Blob, p Point) (RGB, bool) {
	weights := make([]float64, 0, len(blobs))
	colors := make([]RGB, 0, len(blobs))

	for i := range blobs {
		w := pickInfluence(blobs[i].Position.Distance(p), blobs[i].Radius, c.mixingRadius)
		if w <= influenceEpsilon {
			continue
		}
		weights = append(weights, w)
		colors = append(colors, blobs[i].Color)
	}

	total := floats.Sum(weights)
	if total < c.sampleEpsilon || total <= 0 {
		return RGB{}, false
	}
	return c.mixColors(weights, colors, total), true
}

// mixColors normalizes the weight vector by total and produces the
// linear-space weighted blend of colors.
func (c *Compositor) mixColors(weights []float64, colors []RGB, total float64) RGB {
	floats.Scale(1/total, weights)

	mix := make([]float64, 3)
	for i, col := range colors {
		lin := col.Linear(c.gamma)
		floats.AddScaled(mix, weights[i], []float64{lin.R, lin.G, lin.B})
	}
	return RGB{R: mix[0], G: mix[1], B: mix[2]}.Encoded(c.gamma)
}

// pickInfluence is the pick-softness falloff: a cubic smoothstep over the
// visible radius widened by mixing, squared to bias toward nearby blobs.
func pickInfluence(distance, radius, mixing float64) float64 {
	cutoff := radius + mixing
	if cutoff <= 0 {
		cutoff = 1.0
	}
	if distance >= cutoff {
		return 0
	}
	t := 1 - distance/cutoff
	s := t * t * (3 - 2*t)
	return s * s
}
