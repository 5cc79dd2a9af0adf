// Command pixelator converts a raster image into print-ready SVG circle art.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/lattice"
	"github.com/softberries/pixelator/internal/pixelate"
	"github.com/softberries/pixelator/internal/preview"
	"github.com/softberries/pixelator/internal/sample"
	"github.com/softberries/pixelator/pkg/colorutil"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to input image (PNG, JPEG, GIF, TIFF, BMP, or WebP)")
	outPath := flag.String("out", "", "Path to output SVG file")
	configPath := flag.String("config", "", "Optional JSON config file (flags override its values)")

	diameter := flag.Float64("diameter", 10, "Circle diameter in pixels")
	spacing := flag.Float64("spacing", 2, "Spacing between circles in pixels")
	widthMM := flag.Float64("width-mm", 0, "Output width in millimeters (requires -height-mm)")
	heightMM := flag.Float64("height-mm", 0, "Output height in millimeters (requires -width-mm)")
	background := flag.String("background", "", "Background color (e.g. #FFFFFF or white)")
	mode := flag.String("mode", "grid", "Sampling mode: grid, hexagonal or hex")
	render := flag.String("render", "color", "Render mode: color, halftone-black or halftone-white")
	minDot := flag.Float64("min-dot", 0, "Minimum halftone dot size in pixels")
	maxDot := flag.Float64("max-dot", 0, "Maximum halftone dot size in pixels (0 = circle diameter)")
	workers := flag.Int("workers", 0, "Parallel sampling workers (0 = one per CPU core)")
	previewPath := flag.String("preview", "", "Optional PNG preview output path")
	showStats := flag.Bool("stats", false, "Print sample statistics")
	flag.Parse()

	if *imagePath == "" || *outPath == "" {
		fmt.Println("Usage: pixelator -image <input> -out <output.svg> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := buildConfig(*configPath, *diameter, *spacing, *widthMM, *heightMM,
		*background, *mode, *render, *minDot, *maxDot, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processing image: %s\n", *imagePath)
	fmt.Println("Configuration:")
	fmt.Printf("  Circle diameter: %g pixels\n", cfg.CircleDiameter)
	fmt.Printf("  Circle spacing: %g pixels\n", cfg.CircleSpacing)
	fmt.Printf("  Sample mode: %s\n", cfg.SampleMode)
	fmt.Printf("  Render mode: %s\n", cfg.RenderMode)
	if cfg.RenderMode.IsHalftone() {
		fmt.Printf("  Dot size: %g-%g pixels\n", cfg.MinDotSize, cfg.MaxDotSize)
	}
	if cfg.OutputWidthMM > 0 {
		fmt.Printf("  Output dimensions: %gmm x %gmm\n", cfg.OutputWidthMM, cfg.OutputHeightMM)
	}
	if cfg.Background != nil {
		fmt.Printf("  Background: %s\n", colorutil.Hex(*cfg.Background))
	}

	px, err := pixelate.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	doc, err := px.ProcessFile(*imagePath, *outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Processing failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sampled %d circles across %d lattice rows\n",
		len(doc.Circles), lattice.RowCount(doc.PixelHeight, px.Config()))

	if *showStats {
		fmt.Printf("Statistics: %s\n", sample.Summarize(doc.Circles))
	}

	if *previewPath != "" {
		if err := preview.Save(doc, *previewPath); err != nil {
			fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote preview: %s\n", *previewPath)
	}

	fmt.Printf("Successfully generated SVG: %s (%d circles)\n", *outPath, len(doc.Circles))
	fmt.Println("Ready for printing!")
}

// buildConfig merges an optional JSON config file with the command line;
// any flag the user set explicitly wins over the file value.
func buildConfig(configPath string, diameter, spacing, widthMM, heightMM float64,
	background, mode, render string, minDot, maxDot float64, workers int) (config.Config, error) {

	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	} else {
		cfg = config.Config{CircleDiameter: diameter, CircleSpacing: spacing}
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["diameter"] {
		cfg.CircleDiameter = diameter
	}
	if set["spacing"] {
		cfg.CircleSpacing = spacing
	}
	if set["width-mm"] {
		cfg.OutputWidthMM = widthMM
	}
	if set["height-mm"] {
		cfg.OutputHeightMM = heightMM
	}
	if set["min-dot"] {
		cfg.MinDotSize = minDot
	}
	if set["max-dot"] {
		cfg.MaxDotSize = maxDot
	}
	if set["workers"] {
		cfg.Workers = workers
	}
	if set["mode"] || configPath == "" {
		m, err := config.ParseSampleMode(mode)
		if err != nil {
			return config.Config{}, err
		}
		cfg.SampleMode = m
	}
	if set["render"] || configPath == "" {
		m, err := config.ParseRenderMode(render)
		if err != nil {
			return config.Config{}, err
		}
		cfg.RenderMode = m
	}
	if set["background"] || (configPath == "" && background != "") {
		if background == "" || background == "none" {
			cfg.Background = nil
		} else {
			bg, err := colorutil.Parse(background)
			if err != nil {
				return config.Config{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
			}
			cfg.Background = &bg
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
