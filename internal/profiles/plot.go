package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

// PlotView is the base handler of plot panels: the left button pans, the
// right button and the wheel zoom.
type PlotView struct {
	canvas *canvas.Plot
}

// NewPlotView creates a PlotView for a plot panel.
func NewPlotView(_ profile.Controller, panel profile.Panel) (*PlotView, error) {
	p, err := plotPanel(panel)
	if err != nil {
		return nil, err
	}
	return &PlotView{canvas: p}, nil
}

// Canvas returns the panel the handler acts on.
func (p *PlotView) Canvas() *canvas.Plot {
	return p.canvas
}

// Destroy implements profile.Handler.
func (p *PlotView) Destroy() {
	p.canvas.Dragging = false
}

func (p *PlotView) pan(_ context.Context, ev *event.Event) bool {
	p.canvas.PanBy(ev.Delta())
	return true
}

func (p *PlotView) zoomDrag(_ context.Context, ev *event.Event) bool {
	p.canvas.ZoomAxes(ev.Delta())
	return true
}

func (p *PlotView) zoomWheel(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	p.canvas.ZoomBy(wheelFactor(ev, zoomStep), ev.Position)
	return true
}

var plotMethods = profile.Methods[*PlotView]{
	profile.On(ModePanZoom, event.LeftMouseDrag):  (*PlotView).pan,
	profile.On(ModePanZoom, event.RightMouseDrag): (*PlotView).zoomDrag,
	profile.On(ModePanZoom, event.MouseWheel):     (*PlotView).zoomWheel,
}

// PlotViewType is the handler type of power spectrum panels.
var PlotViewType = profile.Define(profile.Spec[*PlotView]{
	Name:    "plot",
	Modes:   []profile.Mode{ModePanZoom},
	Default: ModePanZoom,
	New:     NewPlotView,
	Methods: plotMethods,
})

// TimeSeriesView adds volume selection to PlotView.
type TimeSeriesView struct {
	*PlotView
}

// NewTimeSeriesView creates a TimeSeriesView for a plot panel.
func NewTimeSeriesView(ctl profile.Controller, panel profile.Panel) (*TimeSeriesView, error) {
	p, err := NewPlotView(ctl, panel)
	if err != nil {
		return nil, err
	}
	return &TimeSeriesView{PlotView: p}, nil
}

func (t *TimeSeriesView) selectVolume(_ context.Context, ev *event.Event) bool {
	t.canvas.SelectVolume(ev.Position)
	return true
}

// TimeSeriesType is the handler type of time series panels.
var TimeSeriesType = profile.Define(profile.Spec[*TimeSeriesView]{
	Name:    "timeseries",
	Modes:   []profile.Mode{ModePanZoom, ModeVolume},
	Default: ModePanZoom,
	New:     NewTimeSeriesView,
	Methods: profile.Merge(
		profile.Lift(plotMethods, func(t *TimeSeriesView) *PlotView { return t.PlotView }),
		profile.Methods[*TimeSeriesView]{
			profile.On(ModeVolume, event.LeftMouseDown): (*TimeSeriesView).selectVolume,
			profile.On(ModeVolume, event.LeftMouseDrag): (*TimeSeriesView).selectVolume,
		},
	),
})

// HistogramView adds overlay display range selection to PlotView.
type HistogramView struct {
	*PlotView
}

// NewHistogramView creates a HistogramView for a plot panel.
func NewHistogramView(ctl profile.Controller, panel profile.Panel) (*HistogramView, error) {
	p, err := NewPlotView(ctl, panel)
	if err != nil {
		return nil, err
	}
	return &HistogramView{PlotView: p}, nil
}

func (h *HistogramView) rangeStart(_ context.Context, ev *event.Event) bool {
	h.canvas.Dragging = true
	h.canvas.SetRange(ev.Position, ev.Position)
	return true
}

func (h *HistogramView) rangeDrag(_ context.Context, ev *event.Event) bool {
	if !h.canvas.Dragging {
		return false
	}
	h.canvas.SetRange(ev.DownPosition, ev.Position)
	return true
}

func (h *HistogramView) rangeEnd(ctx context.Context, ev *event.Event) bool {
	if !h.rangeDrag(ctx, ev) {
		return false
	}
	h.canvas.Dragging = false
	return true
}

// HistogramType is the handler type of histogram panels.
var HistogramType = profile.Define(profile.Spec[*HistogramView]{
	Name:    "histogram",
	Modes:   []profile.Mode{ModePanZoom, ModeOverlayRange},
	Default: ModePanZoom,
	New:     NewHistogramView,
	Methods: profile.Merge(
		profile.Lift(plotMethods, func(h *HistogramView) *PlotView { return h.PlotView }),
		profile.Methods[*HistogramView]{
			profile.On(ModeOverlayRange, event.LeftMouseDown): (*HistogramView).rangeStart,
			profile.On(ModeOverlayRange, event.LeftMouseDrag): (*HistogramView).rangeDrag,
			profile.On(ModeOverlayRange, event.LeftMouseUp):   (*HistogramView).rangeEnd,
		},
	),
})

func timeSeriesTables() *profile.TablesBuilder {
	return profile.NewTables().TempMode(ModePanZoom, key.ModCtrl, ModeVolume)
}

func histogramTables() *profile.TablesBuilder {
	return profile.NewTables().TempMode(ModePanZoom, key.ModCtrl, ModeOverlayRange)
}
