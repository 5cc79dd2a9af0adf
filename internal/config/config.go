// Package config defines the validated parameter bundle consumed by every
// pipeline stage.
package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// SampleMode selects the lattice geometry used to place sample points.
type SampleMode int

const (
	// SampleGrid places points on a square grid.
	SampleGrid SampleMode = iota
	// SampleHexagonal places points on a hexagonal lattice (rows offset by
	// half a pitch, row spacing scaled by sin 60°).
	SampleHexagonal
)

func (m SampleMode) String() string {
	switch m {
	case SampleGrid:
		return "grid"
	case SampleHexagonal:
		return "hexagonal"
	default:
		return "unknown"
	}
}

// ParseSampleMode resolves a sampling mode name from the CLI or a config file.
func ParseSampleMode(s string) (SampleMode, error) {
	switch s {
	case "grid", "":
		return SampleGrid, nil
	case "hexagonal", "hex":
		return SampleHexagonal, nil
	default:
		return SampleGrid, fmt.Errorf("%w: unknown sample mode %q", ErrInvalidConfig, s)
	}
}

// RenderMode selects how an averaged sample becomes a circle.
type RenderMode int

const (
	// RenderColor keeps a fixed radius and encodes the sample as fill color.
	RenderColor RenderMode = iota
	// RenderHalftoneBlack draws black dots on a white background; darker
	// samples get larger dots.
	RenderHalftoneBlack
	// RenderHalftoneWhite draws white dots on a black background; lighter
	// samples get larger dots.
	RenderHalftoneWhite
)

func (m RenderMode) String() string {
	switch m {
	case RenderColor:
		return "color"
	case RenderHalftoneBlack:
		return "halftone-black"
	case RenderHalftoneWhite:
		return "halftone-white"
	default:
		return "unknown"
	}
}

// IsHalftone reports whether the mode encodes intensity as dot size.
func (m RenderMode) IsHalftone() bool {
	return m == RenderHalftoneBlack || m == RenderHalftoneWhite
}

// ParseRenderMode resolves a render mode name from the CLI or a config file.
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "color", "":
		return RenderColor, nil
	case "halftone-black":
		return RenderHalftoneBlack, nil
	case "halftone-white":
		return RenderHalftoneWhite, nil
	default:
		return RenderColor, fmt.Errorf("%w: unknown render mode %q", ErrInvalidConfig, s)
	}
}

// Config holds the full parameter set for one conversion. Build it with New
// plus the With* setters (or load it from JSON), then Validate before use.
// The pipeline treats a validated Config as immutable.
type Config struct {
	CircleDiameter float64 // circle diameter in source pixels, > 0
	CircleSpacing  float64 // gap between adjacent circles in pixels, >= 0

	// Physical output size in millimeters. Both set or both zero; when zero
	// the document uses raw pixel coordinates as units.
	OutputWidthMM  float64
	OutputHeightMM float64

	// Background is the document background for color mode; nil means none.
	// Halftone modes override it (white or black) during assembly.
	Background *color.RGBA

	SampleMode SampleMode
	RenderMode RenderMode

	// Halftone dot diameter bounds in pixels: 0 <= MinDotSize < MaxDotSize
	// <= CircleDiameter. Ignored in color mode. When both are zero in a
	// halftone mode Validate substitutes [0, CircleDiameter].
	MinDotSize float64
	MaxDotSize float64

	// Workers is the parallel worker count; 0 means one per CPU core.
	Workers int
}

// New creates a Config with the given lattice parameters and defaults
// elsewhere (grid sampling, color rendering, no background, no physical size).
func New(circleDiameter, circleSpacing float64) (Config, error) {
	cfg := Config{
		CircleDiameter: circleDiameter,
		CircleSpacing:  circleSpacing,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithOutputDimensions sets the physical document size in millimeters.
func (c Config) WithOutputDimensions(widthMM, heightMM float64) Config {
	c.OutputWidthMM = widthMM
	c.OutputHeightMM = heightMM
	return c
}

// WithBackground sets the color-mode background.
func (c Config) WithBackground(bg color.RGBA) Config {
	c.Background = &bg
	return c
}

// WithSampleMode sets the lattice geometry.
func (c Config) WithSampleMode(m SampleMode) Config {
	c.SampleMode = m
	return c
}

// WithRenderMode sets the render mode.
func (c Config) WithRenderMode(m RenderMode) Config {
	c.RenderMode = m
	return c
}

// WithDotSizes sets the halftone dot diameter bounds.
func (c Config) WithDotSizes(minDot, maxDot float64) Config {
	c.MinDotSize = minDot
	c.MaxDotSize = maxDot
	return c
}

// Pitch returns the center-to-center distance between adjacent sample
// points. Positive for any validated Config.
func (c Config) Pitch() float64 {
	return c.CircleDiameter + c.CircleSpacing
}

// Radius returns the sampling disc radius (half the circle diameter).
func (c Config) Radius() float64 {
	return c.CircleDiameter / 2
}

// Validate checks every constraint and normalizes halftone defaults. All
// failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.CircleDiameter <= 0 {
		return fmt.Errorf("%w: circle diameter must be positive, got %g", ErrInvalidConfig, c.CircleDiameter)
	}
	if c.CircleSpacing < 0 {
		return fmt.Errorf("%w: circle spacing cannot be negative, got %g", ErrInvalidConfig, c.CircleSpacing)
	}

	wSet := c.OutputWidthMM != 0
	hSet := c.OutputHeightMM != 0
	if wSet != hSet {
		return fmt.Errorf("%w: output width and height must be specified together", ErrInvalidConfig)
	}
	if wSet && (c.OutputWidthMM <= 0 || c.OutputHeightMM <= 0) {
		return fmt.Errorf("%w: output dimensions must be positive, got %gx%g mm",
			ErrInvalidConfig, c.OutputWidthMM, c.OutputHeightMM)
	}

	if c.RenderMode.IsHalftone() {
		if c.MinDotSize == 0 && c.MaxDotSize == 0 {
			c.MaxDotSize = c.CircleDiameter
		}
		if c.MinDotSize < 0 {
			return fmt.Errorf("%w: min dot size cannot be negative, got %g", ErrInvalidConfig, c.MinDotSize)
		}
		if c.MinDotSize >= c.MaxDotSize {
			return fmt.Errorf("%w: min dot size %g must be smaller than max dot size %g",
				ErrInvalidConfig, c.MinDotSize, c.MaxDotSize)
		}
		if c.MaxDotSize > c.CircleDiameter {
			return fmt.Errorf("%w: max dot size %g exceeds circle diameter %g",
				ErrInvalidConfig, c.MaxDotSize, c.CircleDiameter)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: worker count cannot be negative, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
