package profiles

import (
	"context"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

// Scene3DView is the handler of 3D panels.
type Scene3DView struct {
	canvas *canvas.Scene
}

// NewScene3DView creates a Scene3DView for a scene panel.
func NewScene3DView(_ profile.Controller, panel profile.Panel) (*Scene3DView, error) {
	s, err := scenePanel(panel)
	if err != nil {
		return nil, err
	}
	return &Scene3DView{canvas: s}, nil
}

// Destroy implements profile.Handler.
func (s *Scene3DView) Destroy() {}

func (s *Scene3DView) rotate(_ context.Context, ev *event.Event) bool {
	s.canvas.Rotate(ev.Delta())
	return true
}

func (s *Scene3DView) zoomDrag(_ context.Context, ev *event.Event) bool {
	d := ev.Delta()
	if d.Y == 0 {
		return false
	}
	s.canvas.ZoomBy(1 - d.Y)
	return true
}

func (s *Scene3DView) zoomWheel(_ context.Context, ev *event.Event) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	s.canvas.ZoomBy(wheelFactor(ev, sceneStep))
	return true
}

func (s *Scene3DView) panStart(context.Context, *event.Event) bool {
	return true
}

func (s *Scene3DView) panEnd(context.Context, *event.Event) bool {
	return true
}

func (s *Scene3DView) pan(_ context.Context, ev *event.Event) bool {
	s.canvas.PanBy(ev.Delta())
	return true
}

func (s *Scene3DView) pick(_ context.Context, ev *event.Event) bool {
	return s.canvas.Pick(ev.Position)
}

func (s *Scene3DView) reset(_ context.Context, ev *event.Event) bool {
	if ev.Key != key.KeyRune || ev.Rune != 'r' {
		return false
	}
	s.canvas.Reset()
	return true
}

// Scene3DViewType is the handler type of the 3D "view" profile.
var Scene3DViewType = profile.Define(profile.Spec[*Scene3DView]{
	Name:    "scene3dview",
	Modes:   []profile.Mode{ModeRotate, ModeZoom, ModePan, ModePick},
	Default: ModeRotate,
	New:     NewScene3DView,
	Methods: profile.Methods[*Scene3DView]{
		profile.On(ModeRotate, event.LeftMouseDrag): (*Scene3DView).rotate,
		profile.On(ModeRotate, event.Char):          (*Scene3DView).reset,

		profile.On(ModeZoom, event.LeftMouseDrag): (*Scene3DView).zoomDrag,
		profile.On(ModeZoom, event.MouseWheel):    (*Scene3DView).zoomWheel,

		profile.On(ModePan, event.LeftMouseDown): (*Scene3DView).panStart,
		profile.On(ModePan, event.LeftMouseDrag): (*Scene3DView).pan,
		profile.On(ModePan, event.LeftMouseUp):   (*Scene3DView).panEnd,

		profile.On(ModePick, event.LeftMouseDown): (*Scene3DView).pick,
		profile.On(ModePick, event.LeftMouseDrag): (*Scene3DView).pick,
	},
})

func scene3DTables() *profile.TablesBuilder {
	return profile.NewTables().
		TempMode(ModeRotate, key.ModCtrl, ModeZoom).
		TempMode(ModeRotate, key.ModAlt, ModePan).
		TempMode(ModeRotate, key.ModShift, ModePick).
		Alternate(profile.On(ModeRotate, event.MiddleMouseDown), profile.On(ModePan, event.LeftMouseDown)).
		Alternate(profile.On(ModeRotate, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag)).
		Alternate(profile.On(ModeRotate, event.MiddleMouseUp), profile.On(ModePan, event.LeftMouseUp))
}
