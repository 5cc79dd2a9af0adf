package preview_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/preview"
	"github.com/softberries/pixelator/internal/sample"
	"github.com/softberries/pixelator/internal/svgdoc"
	"github.com/softberries/pixelator/pkg/geometry"
)

func testDoc(t *testing.T) *svgdoc.Document {
	t.Helper()
	cfg, err := config.New(10, 0)
	require.NoError(t, err)
	cfg = cfg.WithBackground(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	circles := []sample.Circle{
		{Index: 0, Center: geometry.NewPoint2D(10, 10), Radius: 5, Fill: color.RGBA{R: 255, A: 255}},
	}
	return svgdoc.Assemble(circles, 20, 20, cfg)
}

func TestRenderDimensions(t *testing.T) {
	img, err := preview.Render(testDoc(t))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
}

func TestRenderDrawsCirclesOverBackground(t *testing.T) {
	img, err := preview.Render(testDoc(t))
	require.NoError(t, err)

	r, g, b, _ := img.At(10, 10).RGBA()
	require.Greater(t, r>>8, uint32(200), "circle center is red")
	require.Less(t, g>>8, uint32(60))
	require.Less(t, b>>8, uint32(60))

	r, g, b, _ = img.At(1, 1).RGBA()
	require.Greater(t, r>>8, uint32(200), "corner shows the white background")
	require.Greater(t, g>>8, uint32(200))
	require.Greater(t, b>>8, uint32(200))
}

func TestSaveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, preview.Save(testDoc(t), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, format, err := image.Decode(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 20, decoded.Bounds().Dx())
}
