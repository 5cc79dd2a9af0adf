package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/lattice"
	"github.com/softberries/pixelator/pkg/geometry"
)

func gridConfig(t *testing.T, diameter, spacing float64) config.Config {
	t.Helper()
	cfg, err := config.New(diameter, spacing)
	require.NoError(t, err)
	return cfg
}

// A 4x4 image with diameter 2 and no spacing yields exactly the four points
// (1,1), (3,1), (1,3), (3,3): pitch 2, first center one radius in.
func TestGridFourByFour(t *testing.T) {
	pts, err := lattice.Generate(4, 4, gridConfig(t, 2, 0))
	require.NoError(t, err)

	want := []geometry.Point2D{
		{X: 1, Y: 1}, {X: 3, Y: 1},
		{X: 1, Y: 3}, {X: 3, Y: 3},
	}
	require.Len(t, pts, len(want))
	for i, p := range pts {
		require.Equal(t, i, p.Index)
		require.Equal(t, want[i], p.Center)
	}
}

func TestGridRowMajorOrdering(t *testing.T) {
	pts, err := lattice.Generate(100, 80, gridConfig(t, 6, 2))
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	for i, p := range pts {
		require.Equal(t, i, p.Index, "indices are the slice order")
	}
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1].Center, pts[i].Center
		if cur.Y == prev.Y {
			require.Greater(t, cur.X, prev.X, "left to right within a row")
		} else {
			require.Greater(t, cur.Y, prev.Y, "rows advance top to bottom")
		}
	}
}

// Every generated disc fits entirely inside the image.
func TestDiscsFitInsideBounds(t *testing.T) {
	for _, mode := range []config.SampleMode{config.SampleGrid, config.SampleHexagonal} {
		cfg := gridConfig(t, 7, 3).WithSampleMode(mode)
		pts, err := lattice.Generate(97, 61, cfg)
		require.NoError(t, err)
		require.NotEmpty(t, pts)

		bounds := geometry.NewRect(0, 0, 97, 61)
		for _, p := range pts {
			require.True(t, bounds.ContainsCircle(p.Center, cfg.Radius()),
				"disc at %v (mode %s) must fit inside the image", p.Center, mode)
		}
	}
}

func TestHexRowGeometry(t *testing.T) {
	cfg := gridConfig(t, 4, 0).WithSampleMode(config.SampleHexagonal)
	pts, err := lattice.Generate(40, 40, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	// Collect distinct row Y positions in order.
	var rows []float64
	for _, p := range pts {
		if len(rows) == 0 || p.Center.Y != rows[len(rows)-1] {
			rows = append(rows, p.Center.Y)
		}
	}
	require.GreaterOrEqual(t, len(rows), 3)

	rowHeight := cfg.Pitch() * 0.8660254037844386
	for i := 1; i < len(rows); i++ {
		require.InDelta(t, rowHeight, rows[i]-rows[i-1], 1e-9, "rows spaced by pitch*sin60")
	}

	// Odd rows start half a pitch further right.
	firstX := func(y float64) float64 {
		for _, p := range pts {
			if p.Center.Y == y {
				return p.Center.X
			}
		}
		t.Fatalf("no point in row y=%g", y)
		return 0
	}
	require.InDelta(t, cfg.Pitch()/2, firstX(rows[1])-firstX(rows[0]), 1e-9)
	require.InDelta(t, firstX(rows[0]), firstX(rows[2]), 1e-9, "even rows align")
}

// Hexagonal packing is denser than the square grid for the same pitch.
func TestHexDenserThanGrid(t *testing.T) {
	grid, err := lattice.Generate(200, 200, gridConfig(t, 8, 2))
	require.NoError(t, err)

	hex, err := lattice.Generate(200, 200, gridConfig(t, 8, 2).WithSampleMode(config.SampleHexagonal))
	require.NoError(t, err)

	require.Greater(t, len(hex), len(grid))
}

// An image smaller than one pitch cell produces no points at all.
func TestEmptySampleSet(t *testing.T) {
	_, err := lattice.Generate(3, 3, gridConfig(t, 4, 0))
	require.ErrorIs(t, err, lattice.ErrEmptySampleSet)

	_, err = lattice.Generate(0, 10, gridConfig(t, 4, 0))
	require.ErrorIs(t, err, lattice.ErrEmptySampleSet)
}

func TestRowCount(t *testing.T) {
	cfg := gridConfig(t, 2, 0)
	require.Equal(t, 2, lattice.RowCount(4, cfg))
	require.Equal(t, 0, lattice.RowCount(1, cfg))

	pts, err := lattice.Generate(4, 4, cfg)
	require.NoError(t, err)
	require.Len(t, pts, 4)
}
