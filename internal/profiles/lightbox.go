package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

const maxColumns = 12

// LightBoxView is the handler of lightbox panels. The wheel scrolls through
// slice rows and, in zoom mode, changes the number of columns.
type LightBoxView struct {
	canvas *canvas.Slice
}

// NewLightBoxView creates a LightBoxView for a slice panel.
func NewLightBoxView(_ profile.Controller, panel profile.Panel) (*LightBoxView, error) {
	s, err := slicePanel(panel)
	if err != nil {
		return nil, err
	}
	return &LightBoxView{canvas: s}, nil
}

// Destroy implements profile.Handler.
func (l *LightBoxView) Destroy() {}

func (l *LightBoxView) navigate(_ context.Context, ev *event.Event) bool {
	l.canvas.Navigate(ev.Position)
	return true
}

func (l *LightBoxView) scroll(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	l.canvas.TopRow = max(l.canvas.TopRow-sign(ev.WheelDelta), 0)
	return true
}

func (l *LightBoxView) zoom(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	l.canvas.Columns = min(max(l.canvas.Columns-sign(ev.WheelDelta), 1), maxColumns)
	return true
}

// LightBoxViewType is the handler type of the lightbox "view" profile.
var LightBoxViewType = profile.Define(profile.Spec[*LightBoxView]{
	Name:    "lightboxview",
	Modes:   []profile.Mode{ModeView, ModeZoom},
	Default: ModeView,
	New:     NewLightBoxView,
	Methods: profile.Methods[*LightBoxView]{
		profile.On(ModeView, event.LeftMouseDrag): (*LightBoxView).navigate,
		profile.On(ModeView, event.MouseWheel):    (*LightBoxView).scroll,
		profile.On(ModeZoom, event.MouseWheel):    (*LightBoxView).zoom,
	},
})

func lightBoxTables() *profile.TablesBuilder {
	return profile.NewTables().
		TempMode(ModeView, key.ModCtrl, ModeZoom).
		Alternate(profile.On(ModeView, event.LeftMouseDown), profile.On(ModeView, event.LeftMouseDrag))
}
