// Package colorutil provides shared color utilities for the pixelator.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common colors accepted by name on the command line.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

var named = map[string]color.RGBA{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"magenta": Magenta,
	"yellow":  Yellow,
	"gray":    Gray,
	"grey":    Gray,
}

// Parse resolves a background color given as "#RRGGBB", "#RGB" or a known
// color name (case-insensitive).
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	if s[0] == '#' {
		return parseHex(s)
	}

	if c, ok := named[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	switch len(s) {
	case 7: // #RRGGBB
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
	case 4: // #RGB
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		r *= 17
		g *= 17
		b *= 17
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats a color as "#RRGGBB" (alpha is not encoded).
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance returns the perceptual luminance of an RGB triple in [0, 1]
// using Rec. 601 weights (0.299 R + 0.587 G + 0.114 B).
func Luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}
