package chromix

// Option configures a Compositor, Renderer or Session during creation.
//
// Example:
//
//	// Default configuration
//	s := chromix.NewSession()
//
//	// Polynomial falloff with hard-edged coverage
//	s := chromix.NewSession(
//	    chromix.WithFalloff(chromix.FalloffPolynomial),
//	    chromix.WithSolidFill(true),
//	)
type Option func(*options)

// options holds the full knob set. Each constructor applies the subset it
// understands and ignores the rest, so one option list can configure a whole
// session.
type options struct {
	falloff       Falloff
	threshold     float64
	sampleEpsilon float64
	gamma         float64
	solid         bool
	pickSoft      bool
	mixingRadius  float64

	resolution int
	smooth     bool
	passes     bool

	historyLimit int
	brushRadius  float64

	placementCenter Point
	ringRadius      float64

	onSample SampleHandler
}

// defaultOptions returns the default option set.
func defaultOptions() options {
	return options{
		falloff:         FalloffQuintic,
		threshold:       DefaultThreshold,
		sampleEpsilon:   DefaultSampleEpsilon,
		gamma:           DefaultGamma,
		mixingRadius:    DefaultMixingRadius,
		resolution:      DefaultResolution,
		historyLimit:    DefaultHistoryLimit,
		brushRadius:     DefaultBrushRadius,
		placementCenter: Point{},
		ringRadius:      DefaultRingRadius,
	}
}

// WithFalloff selects the influence falloff policy.
func WithFalloff(f Falloff) Option {
	return func(o *options) { o.falloff = f }
}

// WithThreshold sets the render coverage threshold (default 0.5).
func WithThreshold(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.threshold = t
		}
	}
}

// WithSampleEpsilon sets the point-sampling coverage threshold
// (default 0.01).
func WithSampleEpsilon(e float64) Option {
	return func(o *options) {
		if e > 0 {
			o.sampleEpsilon = e
		}
	}
}

// WithGamma sets the blend gamma (default 2.2).
func WithGamma(g float64) Option {
	return func(o *options) {
		if g > 0 {
			o.gamma = g
		}
	}
}

// WithSolidFill switches rendered coverage between soft-edged alpha
// (min(1, field), the default) and hard-edged alpha (1.0 once covered).
func WithSolidFill(solid bool) Option {
	return func(o *options) { o.solid = solid }
}

// WithPickSoftness switches point sampling to the widened pick falloff:
// a cubic smoothstep with squared weights reaching the mixing radius beyond
// each blob's visible radius. Off by default, in which case sampling and
// rendering evaluate the same field.
func WithPickSoftness(enabled bool) Option {
	return func(o *options) { o.pickSoft = enabled }
}

// WithMixingRadius sets the pick-softness reach beyond the visible radius
// (default 60). Only meaningful with WithPickSoftness.
func WithMixingRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.mixingRadius = r
		}
	}
}

// WithResolution sets the raster sampling step in pixels (default 3).
// The field is evaluated every N pixels and upsampled; 1 evaluates every
// pixel. A quality/performance tradeoff, not a visual mode.
func WithResolution(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.resolution = n
		}
	}
}

// WithSmoothUpsample switches the coarse-grid upsampling from nearest
// neighbor (blocky, the default) to bilinear interpolation.
func WithSmoothUpsample(smooth bool) Option {
	return func(o *options) { o.smooth = smooth }
}

// WithPresentationPasses enables the two-pass presentation composite (an
// additive pass plus a screen pass at reduced opacity) on rendered rasters.
// Purely cosmetic: it never alters sampling results.
func WithPresentationPasses(enabled bool) Option {
	return func(o *options) { o.passes = enabled }
}

// WithHistoryLimit bounds the undo/redo snapshot count (default 20).
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

// WithBrushRadius sets the radius given to newly added blobs (default 30).
func WithBrushRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.brushRadius = r
		}
	}
}

// WithPlacementRing configures automatic blob placement: new blobs placed
// without an explicit position go on a ring of the given radius around
// center.
func WithPlacementRing(center Point, radius float64) Option {
	return func(o *options) {
		o.placementCenter = center
		if radius > 0 {
			o.ringRadius = radius
		}
	}
}

// WithSampleHandler installs the host callback fired on every successful
// color sample (the sampledColor event, e.g. a brush-color setter).
func WithSampleHandler(h SampleHandler) Option {
	return func(o *options) { o.onSample = h }
}
