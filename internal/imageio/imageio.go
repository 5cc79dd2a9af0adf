// Package imageio loads source images and flattens them for sampling.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens and decodes an image file. PNG, JPEG, GIF, TIFF, BMP and WebP
// are recognized.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ToRGBA flattens any decoded image into an *image.RGBA with origin (0,0)
// so the samplers can index Pix directly. The conversion is parallelized by
// horizontal stripes. Images that are already RGBA at the origin are
// returned as-is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := out.Stride

	numWorkers := runtime.NumCPU()
	if numWorkers > height {
		numWorkers = height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= endY {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				rowOffset := y * stride
				for x := 0; x < width; x++ {
					r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
					pixOffset := rowOffset + x*4
					out.Pix[pixOffset+0] = uint8(r >> 8)
					out.Pix[pixOffset+1] = uint8(g >> 8)
					out.Pix[pixOffset+2] = uint8(b >> 8)
					out.Pix[pixOffset+3] = uint8(a >> 8)
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return out
}
