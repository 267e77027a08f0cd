package session

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/profile"
)

// Size is the demo volume shape.
type Size struct {
	Width, Height, Depth int
}

const histogramBins = 32

// NewPanel creates the canvas model for a view type. Slice views show a
// sphere phantom of the given size and the histogram bins the same
// phantom.
func NewPanel(view profile.ViewType, size Size) (profile.Panel, error) {
	switch view {
	case profile.ViewOrtho, profile.ViewLightBox:
		return canvas.NewSlice(view, sphere(size)), nil

	case profile.ViewTimeSeries:
		p := canvas.NewPlot(view, canvas.Limits{0, float64(size.Depth - 1)}, canvas.Limits{0, 100})
		p.Volumes = size.Depth
		return p, nil

	case profile.ViewHistogram:
		counts, edges := sphere(size).Histogram(histogramBins)
		p := canvas.NewPlot(view, canvas.Limits{edges[0], edges[len(edges)-1]}, canvas.Limits{0, floats.Max(counts)})
		p.Bins, p.BinRange = counts, p.X
		return p, nil

	case profile.ViewPowerSpectrum:
		return canvas.NewPlot(view, canvas.Limits{0, 0.5}, canvas.Limits{0, 1}), nil

	case profile.ViewScene3D:
		return canvas.NewScene(), nil
	}
	return nil, fmt.Errorf("%w: no panel for view %s", profile.ErrNotFound, view)
}

func sphere(size Size) *canvas.Image {
	radius := float64(min(size.Width, size.Height, size.Depth)) / 3
	return canvas.Sphere(size.Width, size.Height, size.Depth, radius)
}
