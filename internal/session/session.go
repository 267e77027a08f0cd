// Package session runs an interactive terminal session that drives one
// profile manager.
//
// The screen shows the panel above a single status line. Escape quits, Tab
// cycles through the profiles of the view, and F1 to F12 select the base
// mode of the active profile by position. Every other key and mouse event
// is translated and dispatched to the active profile.
package session

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/input/terminal"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// Session connects a screen to a profile manager.
type Session struct {
	screen tcell.Screen
	mgr    *profile.Manager
	src    *terminal.Source
	log    *zerolog.Logger

	// view is the slice viewport used to map cells, frozen for the length
	// of a button gesture so drags are measured in one coordinate frame.
	view    viewport
	pressed bool

	last    profile.Result
	message string
	done    bool
}

// viewport is the part of the slice display state the cell mapping
// depends on.
type viewport struct {
	zoom float64
	pan  event.Point
}

// New creates a session on an initialized screen. The manager must have an
// active profile.
func New(ctx context.Context, screen tcell.Screen, mgr *profile.Manager) *Session {
	s := &Session{
		screen: screen,
		mgr:    mgr,
		log:    logging.FromContext(ctx),
	}
	s.src = terminal.NewSource(s.cellToCanvas)
	if sl, ok := mgr.Panel().(*canvas.Slice); ok {
		sl.Prompt = s.prompt
	}
	s.snapshot()
	return s
}

// Done reports whether the user asked to quit.
func (s *Session) Done() bool {
	return s.done
}

// Last returns the result of the most recent dispatch.
func (s *Session) Last() profile.Result {
	return s.last
}

// Run draws the screen and handles events until the user quits or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for !s.done {
		s.Draw()
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		s.Handle(ctx, ev)
	}
	return nil
}

// Handle processes one screen event.
func (s *Session) Handle(ctx context.Context, ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		return
	case *tcell.EventKey:
		if s.shortcut(ctx, e) {
			return
		}
	case *tcell.EventMouse:
		if !s.pressed {
			s.snapshot()
		}
		s.pressed = e.Buttons()&(tcell.ButtonPrimary|tcell.ButtonSecondary|tcell.ButtonMiddle) != 0
	}

	for _, in := range s.src.Translate(ev) {
		s.last = s.mgr.Dispatch(ctx, &in)
		if s.last.Handled() {
			s.message = ""
		}
	}
}

// shortcut handles the session keys. It reports whether e was consumed.
func (s *Session) shortcut(ctx context.Context, e *tcell.EventKey) bool {
	k, _, _ := terminal.ConvertKey(e)
	switch {
	case k == key.KeyEscape:
		s.done = true
		return true

	case k == key.KeyTab:
		s.cycleProfile(ctx)
		return true

	case k >= key.KeyF1 && k <= key.KeyF12:
		s.selectMode(int(k - key.KeyF1))
		return true
	}
	return false
}

func (s *Session) cycleProfile(ctx context.Context) {
	names := s.mgr.Available()
	if len(names) < 2 {
		return
	}
	next := names[0]
	for i, name := range names {
		if name == s.mgr.Name() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	s.src.Reset()
	s.pressed = false
	if err := s.mgr.Activate(ctx, next); err != nil {
		s.log.Warn().Err(err).Str("profile", next).Msg("profile switch failed")
		s.message = err.Error()
	}
}

func (s *Session) selectMode(i int) {
	p := s.mgr.Current()
	if p == nil {
		return
	}
	modes := p.Type().Modes()
	if i >= len(modes) {
		return
	}
	if err := p.SetMode(modes[i]); err != nil {
		s.message = err.Error()
	}
}

// canvasSize returns the cells available to the panel.
func (s *Session) canvasSize() (int, int) {
	w, h := s.screen.Size()
	return w, max(h-1, 1)
}

func (s *Session) snapshot() {
	if sl, ok := s.mgr.Panel().(*canvas.Slice); ok {
		s.view = viewport{zoom: sl.Zoom, pan: sl.Pan}
	}
}

// cellToCanvas maps a screen cell to the canvas coordinates of the panel.
func (s *Session) cellToCanvas(x, y int) event.Point {
	w, h := s.canvasSize()
	cx, cy := float64(x)+0.5, float64(y)+0.5

	switch p := s.mgr.Panel().(type) {
	case *canvas.Slice:
		return sliceCell(p, s.view, w, h, x, y)
	case *canvas.Plot:
		return event.Point{X: cx / float64(w), Y: cy / float64(h)}
	case *canvas.Scene:
		return event.Point{X: 2*cx/float64(w) - 1, Y: 2*cy/float64(h) - 1}
	}
	return terminal.Identity(x, y)
}

// status describes the session state for the status line.
func (s *Session) status() string {
	p := s.mgr.Current()
	if p == nil {
		return "no profile"
	}
	mode := string(p.EffectiveMode())
	if p.EffectiveMode() != p.Mode() {
		mode = fmt.Sprintf("%s (%s)", p.EffectiveMode(), p.Mode())
	}
	mods := p.Modifiers().String()
	if mods == "" {
		mods = "-"
	}
	// Narrow terminals clip the line, so the panel state goes before the
	// dispatch details.
	line := fmt.Sprintf(" %s/%s  mode %s", s.mgr.Panel().ViewType(), s.mgr.Name(), mode)
	if detail := panelStatus(s.mgr.Panel()); detail != "" {
		line += "  " + detail
	}
	line += fmt.Sprintf("  mods %s  %s", mods, s.last.Outcome)
	if s.message != "" {
		line += "  " + s.message
	}
	return line
}
