// Package preview rasterizes an assembled document to a PNG so the result
// can be inspected without an SVG viewer. It draws the same shapes in the
// same order as the SVG output and never feeds back into it.
package preview

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/softberries/pixelator/internal/svgdoc"
)

// Render draws the document at the source image's pixel dimensions and
// returns the raster.
func Render(doc *svgdoc.Document) (image.Image, error) {
	dc := gg.NewContext(doc.PixelWidth, doc.PixelHeight)
	defer dc.Close()

	if err := draw(dc, doc); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Save renders the document and writes it as a PNG file.
func Save(doc *svgdoc.Document, path string) error {
	dc := gg.NewContext(doc.PixelWidth, doc.PixelHeight)
	defer dc.Close()

	if err := draw(dc, doc); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

func draw(dc *gg.Context, doc *svgdoc.Document) error {
	if doc.Background != nil {
		dc.SetColor(*doc.Background)
		dc.DrawRectangle(0, 0, float64(doc.PixelWidth), float64(doc.PixelHeight))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("failed to fill background: %w", err)
		}
	}

	for _, c := range doc.Circles {
		dc.SetColor(c.Fill)
		dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("failed to fill circle %d: %w", c.Index, err)
		}
	}
	return nil
}
