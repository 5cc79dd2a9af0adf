// Package svgdoc assembles the sampled circles into an SVG document with
// physical print dimensions.
package svgdoc

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/sample"
	"github.com/softberries/pixelator/pkg/geometry"
)

// Document is the finished vector artifact: canvas geometry, optional
// background, and the ordered circle sequence. Built once, serialized once.
type Document struct {
	// PixelWidth and PixelHeight are the source image dimensions; the SVG
	// viewBox stays in these units so circle coordinates pass through
	// unchanged.
	PixelWidth  int
	PixelHeight int

	// Physical is the document size in millimeters; zero means the document
	// is sized in raw pixel units instead.
	Physical geometry.Size

	// Background fills the whole canvas behind the circles; nil means none.
	Background *color.RGBA

	Circles []sample.Circle
}

// Assemble builds a Document from the ordered circle set. Halftone modes
// force their canonical background (white behind black dots, black behind
// white dots); color mode uses the configured background, if any.
func Assemble(circles []sample.Circle, imgWidth, imgHeight int, cfg config.Config) *Document {
	doc := &Document{
		PixelWidth:  imgWidth,
		PixelHeight: imgHeight,
		Circles:     circles,
	}

	if cfg.OutputWidthMM > 0 && cfg.OutputHeightMM > 0 {
		doc.Physical = geometry.NewSize(cfg.OutputWidthMM, cfg.OutputHeightMM)
	}

	switch cfg.RenderMode {
	case config.RenderHalftoneBlack:
		bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		doc.Background = &bg
	case config.RenderHalftoneWhite:
		bg := color.RGBA{A: 255}
		doc.Background = &bg
	default:
		doc.Background = cfg.Background
	}

	return doc
}

// ScaleX returns the output-unit-per-pixel factor along X (1 when the
// document has no physical size).
func (d *Document) ScaleX() float64 {
	if d.Physical.IsZero() || d.PixelWidth == 0 {
		return 1
	}
	return d.Physical.Width / float64(d.PixelWidth)
}

// ScaleY returns the output-unit-per-pixel factor along Y. May differ from
// ScaleX: mismatched aspect ratios are rendered as a deliberate anisotropic
// stretch, not rejected.
func (d *Document) ScaleY() float64 {
	if d.Physical.IsZero() || d.PixelHeight == 0 {
		return 1
	}
	return d.Physical.Height / float64(d.PixelHeight)
}

// Render serializes the document as SVG. The background rectangle, when
// present, is written first so every circle draws on top of it; circles
// follow in lattice order so output bytes are reproducible run to run.
func (d *Document) Render(w io.Writer) error {
	// svgo writes through unchecked; capture write errors at the end by
	// buffering locally when the caller's writer can fail mid-document.
	var buf strings.Builder
	canvas := svg.New(&buf)

	pw := float64(d.PixelWidth)
	ph := float64(d.PixelHeight)
	viewBox := fmt.Sprintf(`viewBox="0 0 %g %g"`, pw, ph)

	if !d.Physical.IsZero() {
		canvas.Startunit(d.Physical.Width, d.Physical.Height, "mm", viewBox)
	} else {
		canvas.Start(pw, ph, viewBox)
	}

	if d.Background != nil {
		canvas.Rect(0, 0, pw, ph, fillStyle(*d.Background))
	}

	for _, c := range d.Circles {
		canvas.Circle(c.Center.X, c.Center.Y, c.Radius, fillStyle(c.Fill))
	}

	canvas.End()

	_, err := io.WriteString(w, buf.String())
	return err
}

// String renders the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// fillStyle renders a fill attribute set, adding fill-opacity only when the
// color is translucent.
func fillStyle(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}
