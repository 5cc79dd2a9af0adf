package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/softberries/pixelator/pkg/colorutil"
)

// fileConfig is the on-disk JSON shape. Modes and colors are stored as
// strings so files stay hand-editable.
type fileConfig struct {
	CircleDiameter float64 `json:"circle_diameter"`
	CircleSpacing  float64 `json:"circle_spacing"`
	OutputWidthMM  float64 `json:"output_width_mm,omitempty"`
	OutputHeightMM float64 `json:"output_height_mm,omitempty"`
	Background     string  `json:"background,omitempty"`
	SampleMode     string  `json:"sample_mode,omitempty"`
	RenderMode     string  `json:"render_mode,omitempty"`
	MinDotSize     float64 `json:"min_dot_size,omitempty"`
	MaxDotSize     float64 `json:"max_dot_size,omitempty"`
	Workers        int     `json:"workers,omitempty"`
}

// Load reads and validates a Config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Config{
		CircleDiameter: fc.CircleDiameter,
		CircleSpacing:  fc.CircleSpacing,
		OutputWidthMM:  fc.OutputWidthMM,
		OutputHeightMM: fc.OutputHeightMM,
		MinDotSize:     fc.MinDotSize,
		MaxDotSize:     fc.MaxDotSize,
		Workers:        fc.Workers,
	}

	if cfg.SampleMode, err = ParseSampleMode(fc.SampleMode); err != nil {
		return Config{}, err
	}
	if cfg.RenderMode, err = ParseRenderMode(fc.RenderMode); err != nil {
		return Config{}, err
	}
	if fc.Background != "" {
		bg, err := colorutil.Parse(fc.Background)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.Background = &bg
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the Config to a JSON file.
func (c Config) Save(path string) error {
	fc := fileConfig{
		CircleDiameter: c.CircleDiameter,
		CircleSpacing:  c.CircleSpacing,
		OutputWidthMM:  c.OutputWidthMM,
		OutputHeightMM: c.OutputHeightMM,
		SampleMode:     c.SampleMode.String(),
		RenderMode:     c.RenderMode.String(),
		MinDotSize:     c.MinDotSize,
		MaxDotSize:     c.MaxDotSize,
		Workers:        c.Workers,
	}
	if c.Background != nil {
		fc.Background = colorutil.Hex(*c.Background)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
