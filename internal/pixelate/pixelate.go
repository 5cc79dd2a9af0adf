// Package pixelate ties the pipeline stages together: lattice generation,
// parallel sampling, and document assembly.
package pixelate

import (
	"fmt"
	"image"
	"os"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/imageio"
	"github.com/softberries/pixelator/internal/lattice"
	"github.com/softberries/pixelator/internal/sample"
	"github.com/softberries/pixelator/internal/svgdoc"
)

// Pixelator converts images to circle-art documents under one validated
// configuration. Safe for concurrent use: it holds only the immutable config.
type Pixelator struct {
	cfg config.Config
}

// New validates the configuration and returns a Pixelator for it.
func New(cfg config.Config) (*Pixelator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pixelator{cfg: cfg}, nil
}

// Config returns the validated configuration in use.
func (p *Pixelator) Config() config.Config {
	return p.cfg
}

// Process runs the full pipeline over a decoded image and returns the
// assembled document. Fails only when the image cannot fit a single sample
// disc; individual degenerate points are skipped, not fatal.
func (p *Pixelator) Process(img image.Image) (*svgdoc.Document, error) {
	rgba := imageio.ToRGBA(img)
	width := rgba.Rect.Dx()
	height := rgba.Rect.Dy()

	points, err := lattice.Generate(width, height, p.cfg)
	if err != nil {
		return nil, err
	}

	circles := sample.Process(rgba, points, p.cfg)
	return svgdoc.Assemble(circles, width, height, p.cfg), nil
}

// ProcessFile loads an image, runs the pipeline, and writes the SVG to
// outPath.
func (p *Pixelator) ProcessFile(inPath, outPath string) (*svgdoc.Document, error) {
	img, _, err := imageio.Load(inPath)
	if err != nil {
		return nil, err
	}

	doc, err := p.Process(img)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := doc.Render(f); err != nil {
		return nil, fmt.Errorf("failed to write SVG: %w", err)
	}
	return doc, nil
}
