// Package sample computes a circle descriptor for every lattice point: an
// area-averaged color, mapped to a radius and fill by the configured render
// mode, evaluated across a worker pool.
package sample

import (
	"image"

	"github.com/softberries/pixelator/pkg/geometry"
)

// Averaged is the arithmetic mean color of the pixels under one sampling
// disc, channel-wise, plus how many pixels contributed.
type Averaged struct {
	R, G, B, A float64
	Count      int
}

// Area averages all pixels whose center lies within radius of the given
// point. The scan window is clamped to the image, so a disc reaching past
// the edge averages only the pixels that exist. Count is zero when no pixel
// center falls inside the disc (degenerate radius or far-out-of-bounds
// point); callers must skip such samples.
//
// Deterministic: a fixed row-major traversal of the window, so the result
// is independent of where in the worker pool it runs.
func Area(img *image.RGBA, center geometry.Point2D, radius float64) Averaged {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	x0 := int(center.X - radius)
	x1 := int(center.X + radius)
	y0 := int(center.Y - radius)
	y1 := int(center.Y + radius)

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > width-1 {
		x1 = width - 1
	}
	if y1 > height-1 {
		y1 = height - 1
	}

	r2 := radius * radius

	var rSum, gSum, bSum, aSum uint64
	count := 0
	for y := y0; y <= y1; y++ {
		rowOffset := y * img.Stride
		dy := float64(y) - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) - center.X
			if dx*dx+dy*dy > r2 {
				continue
			}
			pixOffset := rowOffset + x*4
			rSum += uint64(img.Pix[pixOffset+0])
			gSum += uint64(img.Pix[pixOffset+1])
			bSum += uint64(img.Pix[pixOffset+2])
			aSum += uint64(img.Pix[pixOffset+3])
			count++
		}
	}

	if count == 0 {
		return Averaged{}
	}

	n := float64(count)
	return Averaged{
		R:     float64(rSum) / n,
		G:     float64(gSum) / n,
		B:     float64(bSum) / n,
		A:     float64(aSum) / n,
		Count: count,
	}
}
