// Package lattice generates the ordered sample-point set for an image.
//
// Points are emitted in row-major order (left to right, top to bottom); the
// position in that order is the canonical sequence index used downstream to
// keep output deterministic under parallel sampling.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/pkg/geometry"
)

// ErrEmptySampleSet indicates the image is too small to hold even one
// sampling disc at the configured pitch.
var ErrEmptySampleSet = errors.New("empty sample set")

// Point is one lattice sample point in pixel space.
type Point struct {
	Index  int // canonical position in lattice order
	Center geometry.Point2D
}

// sin 60°, the vertical compression of hexagonal row spacing.
const hexRowFactor = 0.8660254037844386

// Generate produces the sample points covering a width×height image for the
// given configuration. A point is emitted only where its whole sampling disc
// fits inside the image; exact edge contact counts as fitting. Returns
// ErrEmptySampleSet when no point fits.
func Generate(width, height int, cfg config.Config) ([]Point, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d pixels", ErrEmptySampleSet, width, height)
	}

	bounds := geometry.NewRect(0, 0, float64(width), float64(height))
	radius := cfg.Radius()
	pitch := cfg.Pitch()

	var points []Point
	switch cfg.SampleMode {
	case config.SampleHexagonal:
		points = hexPoints(bounds, radius, pitch)
	default:
		points = gridPoints(bounds, radius, pitch)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %dx%d image cannot fit a disc of diameter %g at pitch %g",
			ErrEmptySampleSet, width, height, cfg.CircleDiameter, pitch)
	}
	return points, nil
}

// gridPoints walks a square lattice: centers at integer multiples of the
// pitch, offset by one radius from the top-left corner.
func gridPoints(bounds geometry.Rect, radius, pitch float64) []Point {
	var points []Point
	for row := 0; ; row++ {
		y := float64(row)*pitch + radius
		if y+radius > bounds.Height+edgeEps {
			break
		}
		for col := 0; ; col++ {
			x := float64(col)*pitch + radius
			if x+radius > bounds.Width+edgeEps {
				break
			}
			points = append(points, Point{
				Index:  len(points),
				Center: geometry.NewPoint2D(x, y),
			})
		}
	}
	return points
}

// hexPoints walks a hexagonal lattice: row spacing is pitch·sin 60° and
// every odd row is shifted right by half a pitch, so each point sits between
// the two above it.
func hexPoints(bounds geometry.Rect, radius, pitch float64) []Point {
	rowHeight := pitch * hexRowFactor

	var points []Point
	for row := 0; ; row++ {
		y := float64(row)*rowHeight + radius
		if y+radius > bounds.Height+edgeEps {
			break
		}

		offset := 0.0
		if row%2 == 1 {
			offset = pitch / 2
		}
		for col := 0; ; col++ {
			x := float64(col)*pitch + offset + radius
			if x+radius > bounds.Width+edgeEps {
				break
			}
			points = append(points, Point{
				Index:  len(points),
				Center: geometry.NewPoint2D(x, y),
			})
		}
	}
	return points
}

// edgeEps keeps discs that touch the image edge exactly, compensating for
// accumulated floating-point error in the pitch multiples.
const edgeEps = 1e-9

// RowCount returns how many lattice rows fit in the given image height, for
// diagnostics. Mirrors the loop bounds in Generate.
func RowCount(height int, cfg config.Config) int {
	rowHeight := cfg.Pitch()
	if cfg.SampleMode == config.SampleHexagonal {
		rowHeight *= hexRowFactor
	}
	usable := float64(height) - cfg.CircleDiameter
	if usable < 0 {
		return 0
	}
	return int(math.Floor(usable/rowHeight+edgeEps)) + 1
}
