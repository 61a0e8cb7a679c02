package render

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// segments splits a series into runs of drawable points.
// NaN and infinite values break the line, as do non-positive values on a log axis.
func segments(x, y []float64, logScale bool) []plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	var segs []plotter.XYs
	var cur plotter.XYs
	for i := 0; i < n; i++ {
		if !drawable(x[i], y[i], logScale) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func drawable(x, y float64, logScale bool) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	return !logScale || y > 0
}
