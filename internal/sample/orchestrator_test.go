package sample_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/lattice"
	"github.com/softberries/pixelator/internal/sample"
)

// gradient builds an image whose red channel increases left to right and
// blue channel top to bottom, so neighboring sample discs differ.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / (w - 1)),
				B: uint8(y * 255 / (h - 1)),
				A: 255,
			})
		}
	}
	return img
}

// The descriptor sequence is identical for one worker and many workers.
func TestProcessWorkerCountInvariant(t *testing.T) {
	img := gradient(120, 90)
	cfg, err := config.New(8, 2)
	require.NoError(t, err)

	pts, err := lattice.Generate(120, 90, cfg)
	require.NoError(t, err)

	sequential := cfg
	sequential.Workers = 1
	baseline := sample.Process(img, pts, sequential)
	require.NotEmpty(t, baseline)

	for _, n := range []int{2, 3, 8, 64} {
		parallel := cfg
		parallel.Workers = n
		require.Equal(t, baseline, sample.Process(img, pts, parallel),
			"%d workers must reproduce the sequential output", n)
	}
}

func TestProcessLatticeOrder(t *testing.T) {
	img := gradient(100, 100)
	cfg, err := config.New(10, 0)
	require.NoError(t, err)

	pts, err := lattice.Generate(100, 100, cfg)
	require.NoError(t, err)

	circles := sample.Process(img, pts, cfg)
	require.Len(t, circles, len(pts), "a color-mode run keeps every point")
	for i := 1; i < len(circles); i++ {
		require.Greater(t, circles[i].Index, circles[i-1].Index, "output stays in lattice order")
	}
}

// Uniform red input: every circle is pure red at the fixed color-mode radius.
func TestProcessUniformRed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 255
		img.Pix[i+3] = 255
	}

	cfg, err := config.New(10, 0)
	require.NoError(t, err)

	pts, err := lattice.Generate(40, 40, cfg)
	require.NoError(t, err)
	require.Len(t, pts, 16)

	circles := sample.Process(img, pts, cfg)
	require.Len(t, circles, 16)
	for _, c := range circles {
		require.Equal(t, color.RGBA{R: 255, A: 255}, c.Fill)
		require.Equal(t, 5.0, c.Radius)
	}
}

// Halftone over a uniform white image with min dot 0 emits nothing, and the
// orchestrator simply returns the empty (not nil-padded) sequence.
func TestProcessAllPointsSkipped(t *testing.T) {
	img := uniform(40, 40, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	cfg, err := config.New(10, 0)
	require.NoError(t, err)
	cfg = cfg.WithRenderMode(config.RenderHalftoneBlack).WithDotSizes(0, 5)
	require.NoError(t, cfg.Validate())

	pts, err := lattice.Generate(40, 40, cfg)
	require.NoError(t, err)

	circles := sample.Process(img, pts, cfg)
	require.Empty(t, circles)
}

func TestProcessNoPoints(t *testing.T) {
	img := uniform(4, 4, color.RGBA{A: 255})
	cfg, err := config.New(2, 0)
	require.NoError(t, err)
	require.Nil(t, sample.Process(img, nil, cfg))
}
