package sample

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a circle set for diagnostics. It feeds no pipeline
// decision; the CLI prints it on request.
type Stats struct {
	Count           int
	MeanLuminance   float64
	StdDevLuminance float64
	MeanRadius      float64
	MinRadius       float64
	MaxRadius       float64
}

// Summarize computes descriptive statistics over the circle set.
func Summarize(circles []Circle) Stats {
	if len(circles) == 0 {
		return Stats{}
	}

	lums := make([]float64, len(circles))
	radii := make([]float64, len(circles))
	minR, maxR := circles[0].Radius, circles[0].Radius
	for i, c := range circles {
		lums[i] = c.Luminance()
		radii[i] = c.Radius
		if c.Radius < minR {
			minR = c.Radius
		}
		if c.Radius > maxR {
			maxR = c.Radius
		}
	}

	return Stats{
		Count:           len(circles),
		MeanLuminance:   stat.Mean(lums, nil),
		StdDevLuminance: stat.StdDev(lums, nil),
		MeanRadius:      stat.Mean(radii, nil),
		MinRadius:       minR,
		MaxRadius:       maxR,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d circles, luminance %.3f±%.3f, radius %.2f (%.2f-%.2f)",
		s.Count, s.MeanLuminance, s.StdDevLuminance, s.MeanRadius, s.MinRadius, s.MaxRadius)
}
