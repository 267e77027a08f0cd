package canvas

import (
	"math"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/profile"
)

// Limits is a closed data interval.
type Limits [2]float64

// Span returns the interval width.
func (l Limits) Span() float64 {
	return l[1] - l[0]
}

// Plot is a 2D data plot: time series, histogram or power spectrum.
//
// Canvas coordinates are normalized to [0, 1] across the plot area, with Y
// growing downward.
type Plot struct {
	view profile.ViewType

	X, Y Limits

	// Volume is the selected time point of a time series.
	Volume   int
	Volumes  int
	Range    Limits
	Dragging bool

	// Bins holds histogram counts spread evenly over BinRange.
	Bins     []float64
	BinRange Limits
}

// NewPlot creates a plot with the given initial axis limits.
func NewPlot(view profile.ViewType, x, y Limits) *Plot {
	return &Plot{view: view, X: x, Y: y, Range: x, Volumes: 1}
}

// ViewType implements profile.Panel.
func (p *Plot) ViewType() profile.ViewType {
	return p.view
}

// DataAt converts a canvas position to data coordinates.
func (p *Plot) DataAt(pt event.Point) (x, y float64) {
	return p.X[0] + pt.X*p.X.Span(), p.Y[1] - pt.Y*p.Y.Span()
}

// PanBy shifts both axes by a canvas displacement.
func (p *Plot) PanBy(d event.Point) {
	dx := -d.X * p.X.Span()
	dy := d.Y * p.Y.Span()
	p.X = Limits{p.X[0] + dx, p.X[1] + dx}
	p.Y = Limits{p.Y[0] + dy, p.Y[1] + dy}
}

// ZoomBy scales both axes about the canvas point c. Factors above one
// zoom in.
func (p *Plot) ZoomBy(f float64, c event.Point) {
	if f <= 0 {
		return
	}
	cx, cy := p.DataAt(c)
	p.X = scaleAbout(p.X, cx, f)
	p.Y = scaleAbout(p.Y, cy, f)
}

// ZoomAxes scales the axes independently by a canvas displacement, as a
// right-button drag does.
func (p *Plot) ZoomAxes(d event.Point) {
	p.X = scaleAbout(p.X, (p.X[0]+p.X[1])/2, math.Exp(d.X))
	p.Y = scaleAbout(p.Y, (p.Y[0]+p.Y[1])/2, math.Exp(-d.Y))
}

// SelectVolume chooses the time point under pt.
func (p *Plot) SelectVolume(pt event.Point) {
	x, _ := p.DataAt(pt)
	p.Volume = min(max(int(math.Round(x)), 0), p.Volumes-1)
}

// SetRange sets the overlay display range from two canvas positions.
func (p *Plot) SetRange(a, b event.Point) {
	lo, _ := p.DataAt(a)
	hi, _ := p.DataAt(b)
	p.Range = Limits{math.Min(lo, hi), math.Max(lo, hi)}
}

func scaleAbout(l Limits, c, f float64) Limits {
	return Limits{c + (l[0]-c)/f, c + (l[1]-c)/f}
}
