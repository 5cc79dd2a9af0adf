package sample

import (
	"image"
	"runtime"
	"sync"

	"github.com/softberries/pixelator/internal/config"
	"github.com/softberries/pixelator/internal/lattice"
)

// Process evaluates every lattice point against the image and returns the
// resulting circles in lattice order.
//
// The point slice is split into contiguous chunks, one worker per chunk.
// Workers share only read-only state (image, config) and each writes to its
// own pre-allocated slot, so the result is identical for any worker count;
// parallelism is a speedup, never an observable behavior. Points that
// produce no circle leave their slot empty and are dropped during the final
// in-order compaction.
func Process(img *image.RGBA, points []lattice.Point, cfg config.Config) []Circle {
	if len(points) == 0 {
		return nil
	}

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(points) {
		numWorkers = len(points)
	}

	radius := cfg.Radius()

	// One slot per point, keyed by lattice order.
	slots := make([]Circle, len(points))
	filled := make([]bool, len(points))

	chunk := (len(points) + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(pts []lattice.Point) {
			defer wg.Done()
			for _, pt := range pts {
				avg := Area(img, pt.Center, radius)
				if c, ok := Map(avg, pt.Index, pt.Center, cfg); ok {
					slots[pt.Index] = c
					filled[pt.Index] = true
				}
			}
		}(points[start:end])
	}
	wg.Wait()

	circles := make([]Circle, 0, len(points))
	for i := range slots {
		if filled[i] {
			circles = append(circles, slots[i])
		}
	}
	return circles
}
