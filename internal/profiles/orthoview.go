package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

// OrthoView is the default handler of ortho panels: navigation, panning,
// zooming, slice changes, brightness/contrast and picking.
type OrthoView struct {
	ctl    profile.Controller
	canvas *canvas.Slice
}

// NewOrthoView creates an OrthoView for a slice panel.
func NewOrthoView(ctl profile.Controller, panel profile.Panel) (*OrthoView, error) {
	s, err := slicePanel(panel)
	if err != nil {
		return nil, err
	}
	return &OrthoView{ctl: ctl, canvas: s}, nil
}

// Canvas returns the panel the handler acts on.
func (v *OrthoView) Canvas() *canvas.Slice {
	return v.canvas
}

// Destroy clears any zoom rectangle left on the panel.
func (v *OrthoView) Destroy() {
	v.canvas.ZoomRect = nil
}

func (v *OrthoView) navigate(_ context.Context, ev *event.Event) bool {
	v.canvas.Navigate(ev.Position)
	return true
}

// navChar moves the cursor with the arrow keys and changes slice with the
// page keys.
func (v *OrthoView) navChar(_ context.Context, ev *event.Event) bool {
	xa, ya := v.canvas.PlaneAxes()
	var d canvas.Voxel
	switch ev.Key {
	case key.KeyLeft:
		d[xa] = -1
	case key.KeyRight:
		d[xa] = 1
	case key.KeyUp:
		d[ya] = -1
	case key.KeyDown:
		d[ya] = 1
	case key.KeyPageUp:
		d[v.canvas.Axis] = 1
	case key.KeyPageDown:
		d[v.canvas.Axis] = -1
	default:
		return false
	}
	v.canvas.Step(d)
	return true
}

func (v *OrthoView) changeSlice(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	v.canvas.ChangeSlice(sign(ev.WheelDelta))
	return true
}

func (v *OrthoView) zoomWheel(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	v.canvas.ZoomBy(wheelFactor(ev, zoomStep))
	return true
}

func (v *OrthoView) zoomChar(_ context.Context, ev *event.Event) bool {
	if ev.Key != key.KeyRune {
		return false
	}
	switch ev.Rune {
	case '+', '=':
		v.canvas.ZoomBy(zoomStep)
	case '-':
		v.canvas.ZoomBy(1 / zoomStep)
	case '0':
		v.canvas.Zoom = canvas.MinZoom
		v.canvas.Pan = event.Point{}
	default:
		return false
	}
	return true
}

func (v *OrthoView) zoomRectStart(_ context.Context, ev *event.Event) bool {
	r := canvas.RectFrom(ev.Position, ev.Position)
	v.canvas.ZoomRect = &r
	return true
}

func (v *OrthoView) zoomRectDrag(_ context.Context, ev *event.Event) bool {
	r := canvas.RectFrom(ev.DownPosition, ev.Position)
	v.canvas.ZoomRect = &r
	return true
}

func (v *OrthoView) zoomRectEnd(_ context.Context, ev *event.Event) bool {
	if v.canvas.ZoomRect == nil {
		return false
	}
	v.canvas.ZoomRect = nil
	v.canvas.ZoomToRect(canvas.RectFrom(ev.DownPosition, ev.Position))
	return true
}

func (v *OrthoView) panStart(context.Context, *event.Event) bool {
	return true
}

func (v *OrthoView) panDrag(_ context.Context, ev *event.Event) bool {
	v.canvas.PanBy(ev.Delta())
	return true
}

func (v *OrthoView) panChar(_ context.Context, ev *event.Event) bool {
	var d event.Point
	switch ev.Key {
	case key.KeyLeft:
		d.X = 1
	case key.KeyRight:
		d.X = -1
	case key.KeyUp:
		d.Y = 1
	case key.KeyDown:
		d.Y = -1
	default:
		return false
	}
	v.canvas.PanBy(d)
	return true
}

// bricon maps horizontal movement to brightness and vertical movement to
// contrast, one plane width or height spanning the full range.
func (v *OrthoView) bricon(_ context.Context, ev *event.Event) bool {
	xa, ya := v.canvas.PlaneAxes()
	d := ev.Delta()
	v.canvas.AdjustBriCon(
		d.X/float64(v.canvas.Image.Dims[xa]),
		-d.Y/float64(v.canvas.Image.Dims[ya]),
	)
	return true
}

// pick declines when there is nothing under the cursor, leaving the event to
// the fallback table.
func (v *OrthoView) pick(_ context.Context, ev *event.Event) bool {
	return v.canvas.Pick(ev.Position)
}

var orthoViewMethods = profile.Methods[*OrthoView]{
	profile.On(ModeNav, event.LeftMouseDown): (*OrthoView).navigate,
	profile.On(ModeNav, event.LeftMouseDrag): (*OrthoView).navigate,
	profile.On(ModeNav, event.Char):          (*OrthoView).navChar,
	profile.On(ModeNav, event.MouseWheel):    (*OrthoView).changeSlice,

	profile.On(ModeSlice, event.MouseWheel): (*OrthoView).changeSlice,

	profile.On(ModeZoom, event.MouseWheel):     (*OrthoView).zoomWheel,
	profile.On(ModeZoom, event.Char):           (*OrthoView).zoomChar,
	profile.On(ModeZoom, event.RightMouseDown): (*OrthoView).zoomRectStart,
	profile.On(ModeZoom, event.RightMouseDrag): (*OrthoView).zoomRectDrag,
	profile.On(ModeZoom, event.RightMouseUp):   (*OrthoView).zoomRectEnd,

	profile.On(ModePan, event.LeftMouseDown): (*OrthoView).panStart,
	profile.On(ModePan, event.LeftMouseDrag): (*OrthoView).panDrag,
	profile.On(ModePan, event.Char):          (*OrthoView).panChar,

	profile.On(ModeBricon, event.LeftMouseDrag): (*OrthoView).bricon,

	profile.On(ModePick, event.LeftMouseDrag): (*OrthoView).pick,
}

// OrthoViewType is the handler type of the ortho "view" profile.
var OrthoViewType = profile.Define(profile.Spec[*OrthoView]{
	Name:    "orthoview",
	Modes:   viewModes,
	Default: ModeNav,
	New:     NewOrthoView,
	Methods: orthoViewMethods,
})

func orthoViewTables() *profile.TablesBuilder {
	return profile.NewTables().
		TempMode(ModeNav, key.ModCtrl, ModeZoom).
		TempMode(ModeNav, key.ModAlt, ModePan).
		TempMode(ModeNav, key.ModShift, ModeSlice).
		TempMode(ModeNav, key.ModCtrl|key.ModShift, ModeBricon).
		Alternate(profile.On(ModeNav, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag)).
		Alternate(profile.On(ModeNav, event.RightMouseDown), profile.On(ModeZoom, event.RightMouseDown)).
		Alternate(profile.On(ModeNav, event.RightMouseDrag), profile.On(ModeZoom, event.RightMouseDrag)).
		Alternate(profile.On(ModeNav, event.RightMouseUp), profile.On(ModeZoom, event.RightMouseUp)).
		Alternate(profile.On(ModeSlice, event.LeftMouseDown), profile.On(ModePick, event.LeftMouseDrag)).
		Alternate(profile.On(ModeSlice, event.LeftMouseDrag), profile.On(ModePick, event.LeftMouseDrag)).
		Alternate(profile.On(ModeSlice, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag)).
		Alternate(profile.On(ModeSlice, event.RightMouseDown), profile.On(ModeZoom, event.RightMouseDown)).
		Alternate(profile.On(ModeSlice, event.RightMouseDrag), profile.On(ModeZoom, event.RightMouseDrag)).
		Alternate(profile.On(ModeSlice, event.RightMouseUp), profile.On(ModeZoom, event.RightMouseUp)).
		Alternate(profile.On(ModeZoom, event.LeftMouseDown), profile.On(ModeNav, event.LeftMouseDown)).
		Alternate(profile.On(ModeZoom, event.LeftMouseDrag), profile.On(ModeNav, event.LeftMouseDrag)).
		Alternate(profile.On(ModeZoom, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag)).
		Alternate(profile.On(ModePick, event.LeftMouseDown), profile.On(ModePick, event.LeftMouseDrag)).
		Fallback(profile.On(ModePick, event.LeftMouseDown), profile.On(ModeNav, event.LeftMouseDown)).
		Fallback(profile.On(ModePick, event.LeftMouseDrag), profile.On(ModeNav, event.LeftMouseDrag))
}
