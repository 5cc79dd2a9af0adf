package sample

import (
	"image/color"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/pkg/colorutil"
	"github.com/softberries/pixelator/pkg/geometry"
)

// Circle is one renderable output circle: center in pixel space, radius,
// fill, and the lattice sequence index that fixes its position in the
// document. Immutable once produced.
type Circle struct {
	Index  int
	Center geometry.Point2D
	Radius float64
	Fill   color.RGBA
}

// Luminance returns the perceptual luminance of the fill in [0, 1].
func (c Circle) Luminance() float64 {
	return colorutil.Luminance(c.Fill.R, c.Fill.G, c.Fill.B)
}

// Map converts an averaged sample into a circle descriptor according to the
// render mode. The second return is false when the point produces no circle:
// an empty sample, or a halftone radius that maps to zero or below (sparse
// areas render as bare background).
func Map(avg Averaged, index int, center geometry.Point2D, cfg config.Config) (Circle, bool) {
	if avg.Count == 0 {
		return Circle{}, false
	}

	switch cfg.RenderMode {
	case config.RenderHalftoneBlack, config.RenderHalftoneWhite:
		return mapHalftone(avg, index, center, cfg)
	default:
		return Circle{
			Index:  index,
			Center: center,
			Radius: cfg.Radius(),
			Fill: color.RGBA{
				R: uint8(avg.R + 0.5),
				G: uint8(avg.G + 0.5),
				B: uint8(avg.B + 0.5),
				A: uint8(avg.A + 0.5),
			},
		}, true
	}
}

// mapHalftone maps luminance linearly onto the configured dot-size range.
// Black-on-white: dark samples get large dots. White-on-black: the inverse.
// The radius is clamped to half the circle diameter so a dot never crosses
// its lattice cell.
func mapHalftone(avg Averaged, index int, center geometry.Point2D, cfg config.Config) (Circle, bool) {
	lum := colorutil.Luminance(uint8(avg.R+0.5), uint8(avg.G+0.5), uint8(avg.B+0.5))
	span := cfg.MaxDotSize - cfg.MinDotSize

	var radius float64
	var fill color.RGBA
	if cfg.RenderMode == config.RenderHalftoneBlack {
		radius = cfg.MaxDotSize - lum*span
		fill = colorutil.Black
	} else {
		radius = cfg.MinDotSize + lum*span
		fill = colorutil.White
	}

	if radius > cfg.Radius() {
		radius = cfg.Radius()
	}
	if radius <= 0 {
		return Circle{}, false
	}

	return Circle{
		Index:  index,
		Center: center,
		Radius: radius,
		Fill:   fill,
	}, true
}
