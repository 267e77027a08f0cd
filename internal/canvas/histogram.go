package canvas

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram bins the image values into n equal-width bins spanning the
// data range. It returns the bin counts and the n+1 bin edges; the
// maximum value falls into the last bin.
func (im *Image) Histogram(n int) (counts, edges []float64) {
	n = max(n, 1)
	lo, hi := im.Range()
	if hi <= lo {
		hi = lo + 1
	}

	x := make([]float64, len(im.Data))
	for i, v := range im.Data {
		x[i] = float64(v)
	}
	slices.Sort(x)

	edges = floats.Span(make([]float64, n+1), float64(lo), float64(hi))
	// stat.Histogram excludes values equal to the last divider.
	last := edges[n]
	edges[n] = math.Nextafter(last, math.Inf(1))
	counts = stat.Histogram(nil, edges, x, nil)
	edges[n] = last
	return counts, edges
}
