package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// OrthoEdit extends OrthoView with voxel selection tools.
type OrthoEdit struct {
	*OrthoView
}

// NewOrthoEdit creates an OrthoEdit for a slice panel.
func NewOrthoEdit(ctl profile.Controller, panel profile.Panel) (*OrthoEdit, error) {
	v, err := NewOrthoView(ctl, panel)
	if err != nil {
		return nil, err
	}
	return &OrthoEdit{OrthoView: v}, nil
}

// Destroy hides the selection cursor.
func (e *OrthoEdit) Destroy() {
	e.canvas.Cursor = nil
	e.OrthoView.Destroy()
}

func (e *OrthoEdit) cursor(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	return true
}

func (e *OrthoEdit) selectDown(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	e.canvas.Brush(ev.Position, true)
	return true
}

func (e *OrthoEdit) selectDrag(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	e.canvas.BrushStroke(ev.LastPosition, ev.Position, true)
	return true
}

func (e *OrthoEdit) deselectDown(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	e.canvas.Brush(ev.Position, false)
	return true
}

func (e *OrthoEdit) deselectDrag(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	e.canvas.BrushStroke(ev.LastPosition, ev.Position, false)
	return true
}

func (e *OrthoEdit) selectEnd(ctx context.Context, _ *event.Event) bool {
	logging.FromContext(ctx).Debug().
		Int("selected", e.canvas.Selection.Len()).
		Msg("selection updated")
	return true
}

func (e *OrthoEdit) selectIntensity(_ context.Context, ev *event.Event) bool {
	e.canvas.SetCursor(ev.Position)
	e.canvas.SelectByIntensity(ev.Position)
	return true
}

func (e *OrthoEdit) fill(ctx context.Context, ev *event.Event) bool {
	n := e.canvas.FillRegion(ev.Position)
	logging.FromContext(ctx).Debug().Int("voxels", n).Msg("region filled")
	return true
}

// editChar adds the fill key to the navigation keys. The edit modes send
// their key presses here through the alternate table.
func (e *OrthoEdit) editChar(ctx context.Context, ev *event.Event) bool {
	if ev.Key == key.KeyRune && ev.Rune == 'f' {
		n := e.canvas.FillSelection()
		logging.FromContext(ctx).Debug().
			Int("voxels", n).
			Float32("value", e.canvas.FillValue).
			Msg("selection filled")
		return true
	}
	return e.navChar(ctx, ev)
}

func (e *OrthoEdit) changeSize(_ context.Context, ev *event.Event) bool {
	e.canvas.ChangeBrush(sign(ev.WheelDelta))
	return ev.WheelDelta != 0
}

func (e *OrthoEdit) changeThreshold(_ context.Context, ev *event.Event) bool {
	e.canvas.ChangeThreshold(float64(sign(ev.WheelDelta)))
	return ev.WheelDelta != 0
}

func (e *OrthoEdit) changeRadius(_ context.Context, ev *event.Event) bool {
	e.canvas.ChangeRadius(float64(sign(ev.WheelDelta)))
	return ev.WheelDelta != 0
}

var orthoEditMethods = profile.Merge(
	profile.Lift(orthoViewMethods, func(e *OrthoEdit) *OrthoView { return e.OrthoView }),
	profile.Methods[*OrthoEdit]{
		profile.On(ModeNav, event.Char): (*OrthoEdit).editChar,

		profile.On(ModeSel, event.LeftMouseDown): (*OrthoEdit).selectDown,
		profile.On(ModeSel, event.LeftMouseDrag): (*OrthoEdit).selectDrag,
		profile.On(ModeSel, event.LeftMouseUp):   (*OrthoEdit).selectEnd,
		profile.On(ModeSel, event.MouseMove):     (*OrthoEdit).cursor,

		profile.On(ModeDesel, event.LeftMouseDown): (*OrthoEdit).deselectDown,
		profile.On(ModeDesel, event.LeftMouseDrag): (*OrthoEdit).deselectDrag,
		profile.On(ModeDesel, event.LeftMouseUp):   (*OrthoEdit).selectEnd,

		profile.On(ModeSelint, event.LeftMouseDown): (*OrthoEdit).selectIntensity,
		profile.On(ModeSelint, event.LeftMouseDrag): (*OrthoEdit).selectIntensity,
		profile.On(ModeSelint, event.LeftMouseUp):   (*OrthoEdit).selectEnd,
		profile.On(ModeSelint, event.MouseMove):     (*OrthoEdit).cursor,

		profile.On(ModeFill, event.LeftMouseDown): (*OrthoEdit).fill,

		profile.On(ModeChsize, event.MouseWheel):  (*OrthoEdit).changeSize,
		profile.On(ModeChthres, event.MouseWheel): (*OrthoEdit).changeThreshold,
		profile.On(ModeChrad, event.MouseWheel):   (*OrthoEdit).changeRadius,
	},
)

// OrthoEditType is the handler type of the ortho "edit" profile.
var OrthoEditType = profile.Define(profile.Spec[*OrthoEdit]{
	Name:    "orthoedit",
	Modes:   withViewModes(ModeSel, ModeDesel, ModeSelint, ModeFill, ModeChsize, ModeChthres, ModeChrad),
	Default: ModeNav,
	New:     NewOrthoEdit,
	Methods: orthoEditMethods,
})

func orthoEditTables() *profile.TablesBuilder {
	b := profile.NewTables().Extend(orthoViewTables().Build())

	for _, m := range []profile.Mode{ModeSel, ModeDesel, ModeSelint, ModeFill} {
		b.TempMode(m, key.ModShift, ModeSlice).
			TempMode(m, key.ModAlt, ModePan).
			TempMode(m, key.ModCtrl, ModeZoom).
			Alternate(profile.On(m, event.Char), profile.On(ModeNav, event.Char))
	}
	b.TempMode(ModeSel, key.ModCtrl|key.ModShift, ModeChsize).
		TempMode(ModeDesel, key.ModCtrl|key.ModShift, ModeChsize).
		TempMode(ModeSelint, key.ModCtrl|key.ModShift, ModeChthres).
		TempMode(ModeSelint, key.ModAlt|key.ModShift, ModeChrad)

	// The right button runs the opposite tool.
	rightToLeft := [][2]event.Kind{
		{event.RightMouseDown, event.LeftMouseDown},
		{event.RightMouseDrag, event.LeftMouseDrag},
		{event.RightMouseUp, event.LeftMouseUp},
	}
	for _, k := range rightToLeft {
		b.Alternate(profile.On(ModeSel, k[0]), profile.On(ModeDesel, k[1])).
			Alternate(profile.On(ModeDesel, k[0]), profile.On(ModeSel, k[1])).
			Alternate(profile.On(ModeSelint, k[0]), profile.On(ModeDesel, k[1])).
			Alternate(profile.On(ModeFill, k[0]), profile.On(ModeDesel, k[1]))
	}

	b.Alternate(profile.On(ModeDesel, event.MouseMove), profile.On(ModeSel, event.MouseMove))
	for _, m := range []profile.Mode{ModeSel, ModeDesel, ModeSelint} {
		b.Alternate(profile.On(m, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag))
	}
	return b
}
