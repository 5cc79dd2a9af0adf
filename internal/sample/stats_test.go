package sample_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softberries/pixelator/internal/sample"
)

func TestSummarize(t *testing.T) {
	circles := []sample.Circle{
		{Index: 0, Radius: 2, Fill: color.RGBA{A: 255}},
		{Index: 1, Radius: 4, Fill: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	s := sample.Summarize(circles)
	require.Equal(t, 2, s.Count)
	require.InDelta(t, 0.5, s.MeanLuminance, 1e-9)
	require.InDelta(t, 3.0, s.MeanRadius, 1e-9)
	require.Equal(t, 2.0, s.MinRadius)
	require.Equal(t, 4.0, s.MaxRadius)
	require.NotEmpty(t, s.String())
}

func TestSummarizeEmpty(t *testing.T) {
	s := sample.Summarize(nil)
	require.Equal(t, 0, s.Count)
}
