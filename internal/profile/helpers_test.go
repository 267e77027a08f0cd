package profile_test

import (
	"context"
	"errors"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

type testPanel struct {
	view profile.ViewType
}

func (p testPanel) ViewType() profile.ViewType {
	return p.view
}

// recorder logs every method call; triggers listed in decline return false.
type recorder struct {
	ctl       profile.Controller
	calls     []profile.Trigger
	decline   map[profile.Trigger]bool
	destroyed int
}

func (r *recorder) Destroy() {
	r.destroyed++
}

func rec(t profile.Trigger) profile.Method[*recorder] {
	return func(r *recorder, _ context.Context, _ *event.Event) bool {
		r.calls = append(r.calls, t)
		return !r.decline[t]
	}
}

func recMethods(triggers ...profile.Trigger) profile.Methods[*recorder] {
	m := make(profile.Methods[*recorder], len(triggers))
	for _, t := range triggers {
		m[t] = rec(t)
	}
	return m
}

func newRecorder(ctl profile.Controller, _ profile.Panel) (*recorder, error) {
	return &recorder{ctl: ctl, decline: make(map[profile.Trigger]bool)}, nil
}

var (
	navDown    = profile.On("nav", event.LeftMouseDown)
	navDrag    = profile.On("nav", event.LeftMouseDrag)
	navChar    = profile.On("nav", event.Char)
	zoomRight  = profile.On("zoom", event.RightMouseDown)
	zoomChar   = profile.On("zoom", event.Char)
	zoomWheel  = profile.On("zoom", event.MouseWheel)
	panDrag    = profile.On("pan", event.LeftMouseDrag)
	pickDown   = profile.On("pick", event.LeftMouseDown)
	deselDown  = profile.On("desel", event.LeftMouseDown)
	selDown    = profile.On("sel", event.LeftMouseDown)
	selRight   = profile.On("sel", event.RightMouseDown)
	brokenDown = profile.On("broken", event.LeftMouseDown)
)

func viewType() *profile.HandlerType {
	return profile.Define(profile.Spec[*recorder]{
		Name:    "view",
		Modes:   []profile.Mode{"nav", "zoom", "pan", "pick"},
		Default: "nav",
		New:     newRecorder,
		Methods: recMethods(navDown, navDrag, navChar, zoomRight, zoomChar, zoomWheel, panDrag, pickDown),
	})
}

func viewTables() *profile.Tables {
	return profile.NewTables().
		TempMode("nav", key.ModCtrl, "zoom").
		TempMode("nav", key.ModCtrl|key.ModShift, "pan").
		TempMode("nav", key.ModShift, "pick").
		Alternate(profile.On("nav", event.RightMouseDown), zoomRight).
		Alternate(profile.On("nav", event.MiddleMouseDrag), panDrag).
		Fallback(pickDown, navDown).
		Build()
}

func editType() *profile.HandlerType {
	return profile.Define(profile.Spec[*recorder]{
		Name:    "edit",
		Modes:   []profile.Mode{"sel", "desel"},
		Default: "sel",
		New:     newRecorder,
		Methods: recMethods(selDown, deselDown),
	})
}

func editTables() *profile.Tables {
	return profile.NewTables().
		Alternate(selRight, deselDown).
		Build()
}

type fixture struct {
	cfg  *profile.Config
	view *profile.HandlerType
	edit *profile.HandlerType
}

func newFixture() (fixture, error) {
	view, edit := viewType(), editType()
	cfg, err := profile.NewBuilder().
		Bind(profile.ViewOrtho, "view", view).
		Bind(profile.ViewOrtho, "edit", edit).
		Bind(profile.ViewLightBox, "view", view).
		Tables(view, viewTables()).
		Tables(edit, editTables()).
		Build()
	if err != nil {
		return fixture{}, err
	}
	return fixture{cfg: cfg, view: view, edit: edit}, nil
}

func configIssues(err error) []string {
	var ce *profile.ConfigError
	if !errors.As(err, &ce) {
		return nil
	}
	out := make([]string, len(ce.Issues))
	for i, is := range ce.Issues {
		out[i] = is.String()
	}
	return out
}
