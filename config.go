package chromix

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file-level configuration for a mixing session, loaded from
// TOML by hosting applications. Zero values mean "use the default".
type Config struct {
	// Falloff selects the influence function: "quintic" (default) or
	// "polynomial".
	Falloff string `toml:"falloff"`

	// Threshold is the render coverage threshold.
	Threshold float64 `toml:"threshold"`

	// SampleEpsilon is the point-sampling coverage threshold.
	SampleEpsilon float64 `toml:"sample_epsilon"`

	// Gamma is the blend gamma.
	Gamma float64 `toml:"gamma"`

	// Resolution is the raster sampling step in pixels.
	Resolution int `toml:"resolution"`

	// Solid switches rendered coverage to hard-edged alpha.
	Solid bool `toml:"solid"`

	// PickSoftness widens point sampling beyond the rendered field.
	PickSoftness bool `toml:"pick_softness"`

	// MixingRadius is the pick-softness reach beyond the visible radius.
	MixingRadius float64 `toml:"mixing_radius"`

	// Smooth switches coarse-grid upsampling to bilinear.
	Smooth bool `toml:"smooth"`

	// PresentationPasses enables the cosmetic two-pass composite.
	PresentationPasses bool `toml:"presentation_passes"`

	// HistoryLimit bounds the undo/redo snapshot count.
	HistoryLimit int `toml:"history_limit"`

	// BrushRadius is the radius for newly placed blobs.
	BrushRadius float64 `toml:"brush_radius"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Falloff:       FalloffQuintic.String(),
		Threshold:     DefaultThreshold,
		SampleEpsilon: DefaultSampleEpsilon,
		Gamma:         DefaultGamma,
		Resolution:    DefaultResolution,
		MixingRadius:  DefaultMixingRadius,
		HistoryLimit:  DefaultHistoryLimit,
		BrushRadius:   DefaultBrushRadius,
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("chromix: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("chromix: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if _, err := ParseFalloff(c.Falloff); err != nil {
		return err
	}
	if c.Threshold < 0 {
		return fmt.Errorf("chromix: negative threshold %v", c.Threshold)
	}
	if c.SampleEpsilon < 0 {
		return fmt.Errorf("chromix: negative sample epsilon %v", c.SampleEpsilon)
	}
	if c.Gamma < 0 {
		return fmt.Errorf("chromix: negative gamma %v", c.Gamma)
	}
	if c.Resolution < 0 {
		return fmt.Errorf("chromix: negative resolution %v", c.Resolution)
	}
	if c.MixingRadius < 0 {
		return fmt.Errorf("chromix: negative mixing radius %v", c.MixingRadius)
	}
	return nil
}

// Options converts the configuration into an option list for NewSession,
// NewRenderer or NewCompositor.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	falloff, err := ParseFalloff(c.Falloff)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithFalloff(falloff),
		WithSolidFill(c.Solid),
		WithPickSoftness(c.PickSoftness),
		WithSmoothUpsample(c.Smooth),
		WithPresentationPasses(c.PresentationPasses),
	}
	if c.MixingRadius > 0 {
		opts = append(opts, WithMixingRadius(c.MixingRadius))
	}
	if c.Threshold > 0 {
		opts = append(opts, WithThreshold(c.Threshold))
	}
	if c.SampleEpsilon > 0 {
		opts = append(opts, WithSampleEpsilon(c.SampleEpsilon))
	}
	if c.Gamma > 0 {
		opts = append(opts, WithGamma(c.Gamma))
	}
	if c.Resolution > 0 {
		opts = append(opts, WithResolution(c.Resolution))
	}
	if c.HistoryLimit > 0 {
		opts = append(opts, WithHistoryLimit(c.HistoryLimit))
	}
	if c.BrushRadius > 0 {
		opts = append(opts, WithBrushRadius(c.BrushRadius))
	}
	return opts, nil
}
