package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// OrthoCrop extends OrthoView with crop box editing. A press grabs the
// nearest in-plane edge of the box and dragging moves it.
type OrthoCrop struct {
	*OrthoView
	edge canvas.CropEdge
}

// NewOrthoCrop creates an OrthoCrop for a slice panel.
func NewOrthoCrop(ctl profile.Controller, panel profile.Panel) (*OrthoCrop, error) {
	v, err := NewOrthoView(ctl, panel)
	if err != nil {
		return nil, err
	}
	return &OrthoCrop{OrthoView: v}, nil
}

// Destroy drops any grabbed edge.
func (c *OrthoCrop) Destroy() {
	c.edge = canvas.EdgeNone
	c.OrthoView.Destroy()
}

func (c *OrthoCrop) grab(_ context.Context, ev *event.Event) bool {
	c.edge = c.canvas.GrabCropEdge(ev.Position)
	return c.edge != canvas.EdgeNone
}

func (c *OrthoCrop) drag(_ context.Context, ev *event.Event) bool {
	if c.edge == canvas.EdgeNone {
		return false
	}
	c.canvas.MoveCropEdge(c.edge, ev.Position)
	return true
}

func (c *OrthoCrop) release(ctx context.Context, ev *event.Event) bool {
	if !c.drag(ctx, ev) {
		return false
	}
	c.edge = canvas.EdgeNone
	logging.FromContext(ctx).Debug().
		Stringer("lo", c.canvas.Crop.Lo).
		Stringer("hi", c.canvas.Crop.Hi).
		Msg("crop box changed")
	return true
}

var orthoCropMethods = profile.Merge(
	profile.Lift(orthoViewMethods, func(c *OrthoCrop) *OrthoView { return c.OrthoView }),
	profile.Methods[*OrthoCrop]{
		profile.On(ModeCrop, event.LeftMouseDown): (*OrthoCrop).grab,
		profile.On(ModeCrop, event.LeftMouseDrag): (*OrthoCrop).drag,
		profile.On(ModeCrop, event.LeftMouseUp):   (*OrthoCrop).release,
	},
)

// OrthoCropType is the handler type of the ortho "crop" profile.
var OrthoCropType = profile.Define(profile.Spec[*OrthoCrop]{
	Name:    "orthocrop",
	Modes:   append([]profile.Mode{ModeCrop}, viewModes...),
	Default: ModeCrop,
	New:     NewOrthoCrop,
	Methods: orthoCropMethods,
})

func orthoCropTables() *profile.TablesBuilder {
	return profile.NewTables().
		Extend(orthoViewTables().Build()).
		TempMode(ModeCrop, key.ModShift, ModeNav).
		TempMode(ModeCrop, key.ModCtrl, ModeZoom).
		TempMode(ModeCrop, key.ModAlt, ModePan).
		TempMode(ModeCrop, key.ModCtrl|key.ModShift, ModeSlice).
		Alternate(profile.On(ModeCrop, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag))
}
