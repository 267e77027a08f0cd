package profiles

import (
	"context"
	"strings"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// OrthoAnnotate extends OrthoView with drawing tools. Shapes are drawn with
// the left button, text is placed on release, and the right button moves an
// existing annotation in every drawing mode.
type OrthoAnnotate struct {
	*OrthoView

	drawing *canvas.Annotation
	moving  *canvas.Annotation
}

// NewOrthoAnnotate creates an OrthoAnnotate for a slice panel.
func NewOrthoAnnotate(ctl profile.Controller, panel profile.Panel) (*OrthoAnnotate, error) {
	v, err := NewOrthoView(ctl, panel)
	if err != nil {
		return nil, err
	}
	return &OrthoAnnotate{OrthoView: v}, nil
}

// Destroy discards a shape still being drawn.
func (a *OrthoAnnotate) Destroy() {
	if a.drawing != nil {
		a.canvas.Discard(a.drawing)
		a.drawing = nil
	}
	a.moving = nil
	a.OrthoView.Destroy()
}

// drawStart returns the press method of a drawing mode.
func drawStart(shape canvas.Shape) profile.Method[*OrthoAnnotate] {
	return func(a *OrthoAnnotate, _ context.Context, ev *event.Event) bool {
		a.drawing = a.canvas.Annotate(shape, ev.Position)
		return true
	}
}

func (a *OrthoAnnotate) drawDrag(_ context.Context, ev *event.Event) bool {
	if a.drawing == nil {
		return false
	}
	if a.drawing.Shape == canvas.ShapePoint {
		a.drawing.From = ev.Position
	}
	a.drawing.To = ev.Position
	return true
}

func (a *OrthoAnnotate) drawEnd(ctx context.Context, ev *event.Event) bool {
	if !a.drawDrag(ctx, ev) {
		return false
	}
	log := logging.FromContext(ctx)
	if a.drawing.Empty() {
		a.canvas.Discard(a.drawing)
		log.Debug().Str("shape", string(a.drawing.Shape)).Msg("empty annotation discarded")
	} else {
		log.Debug().Str("shape", string(a.drawing.Shape)).Msg("annotation added")
	}
	a.drawing = nil
	return true
}

// placeText prompts for a label at the release position, then returns the
// profile to navigation.
func (a *OrthoAnnotate) placeText(ctx context.Context, ev *event.Event) bool {
	if a.canvas.Prompt == nil {
		return false
	}
	text, ok := a.canvas.Prompt("Annotation text")
	if ok && strings.TrimSpace(text) != "" {
		t := a.canvas.Annotate(canvas.ShapeText, ev.Position)
		t.Text = text
		logging.FromContext(ctx).Debug().Str("text", text).Msg("text annotation added")
	}
	if err := a.ctl.SetMode(ModeNav); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("leave text mode")
	}
	return true
}

func (a *OrthoAnnotate) moveStart(_ context.Context, ev *event.Event) bool {
	a.moving = a.canvas.AnnotationAt(ev.Position)
	return a.moving != nil
}

func (a *OrthoAnnotate) moveDrag(_ context.Context, ev *event.Event) bool {
	if a.moving == nil {
		return false
	}
	a.moving.Move(ev.Delta())
	return true
}

func (a *OrthoAnnotate) moveEnd(ctx context.Context, ev *event.Event) bool {
	if !a.moveDrag(ctx, ev) {
		return false
	}
	a.moving = nil
	return true
}

var drawModes = []profile.Mode{ModeLine, ModeArrow, ModePoint, ModeRect, ModeEllipse}

func orthoAnnotateMethods() profile.Methods[*OrthoAnnotate] {
	m := profile.Methods[*OrthoAnnotate]{
		profile.On(ModeText, event.LeftMouseUp): (*OrthoAnnotate).placeText,

		profile.On(ModeMove, event.RightMouseDown): (*OrthoAnnotate).moveStart,
		profile.On(ModeMove, event.RightMouseDrag): (*OrthoAnnotate).moveDrag,
		profile.On(ModeMove, event.RightMouseUp):   (*OrthoAnnotate).moveEnd,
	}
	for _, mode := range drawModes {
		m[profile.On(mode, event.LeftMouseDown)] = drawStart(canvas.Shape(mode))
		m[profile.On(mode, event.LeftMouseDrag)] = (*OrthoAnnotate).drawDrag
		m[profile.On(mode, event.LeftMouseUp)] = (*OrthoAnnotate).drawEnd
	}
	return profile.Merge(
		profile.Lift(orthoViewMethods, func(a *OrthoAnnotate) *OrthoView { return a.OrthoView }),
		m,
	)
}

// OrthoAnnotateType is the handler type of the ortho "annotate" profile.
var OrthoAnnotateType = profile.Define(profile.Spec[*OrthoAnnotate]{
	Name:    "orthoannotate",
	Modes:   withViewModes(ModeLine, ModeArrow, ModePoint, ModeRect, ModeText, ModeEllipse, ModeMove),
	Default: ModeNav,
	New:     NewOrthoAnnotate,
	Methods: orthoAnnotateMethods(),
})

func orthoAnnotateTables() *profile.TablesBuilder {
	b := profile.NewTables().Extend(orthoViewTables().Build())
	for _, m := range append([]profile.Mode{ModeText}, drawModes...) {
		b.TempMode(m, key.ModShift, ModeNav).
			TempMode(m, key.ModCtrl, ModeZoom).
			TempMode(m, key.ModAlt, ModePan).
			TempMode(m, key.ModCtrl|key.ModShift, ModeSlice).
			Alternate(profile.On(m, event.MiddleMouseDrag), profile.On(ModePan, event.LeftMouseDrag)).
			Alternate(profile.On(m, event.RightMouseDown), profile.On(ModeMove, event.RightMouseDown)).
			Alternate(profile.On(m, event.RightMouseDrag), profile.On(ModeMove, event.RightMouseDrag)).
			Alternate(profile.On(m, event.RightMouseUp), profile.On(ModeMove, event.RightMouseUp))
	}
	return b
}
