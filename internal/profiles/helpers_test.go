package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

// session drives one panel through the profile manager, tracking gesture
// positions the way the pointer normalizer does.
type session struct {
	t    *testing.T
	ctx  context.Context
	mgr  *profile.Manager
	down event.Point
	last event.Point
}

func newSession(t *testing.T, panel profile.Panel, name string) *session {
	t.Helper()
	s := &session{t: t, ctx: context.Background(), mgr: profile.NewManager(Default(), panel)}
	if name == "" {
		require.NoError(t, s.mgr.ActivateDefault(s.ctx))
	} else {
		require.NoError(t, s.mgr.Activate(s.ctx, name))
	}
	t.Cleanup(s.mgr.Close)
	return s
}

func newOrtho(t *testing.T, name string) (*session, *canvas.Slice) {
	t.Helper()
	c := canvas.NewSlice(profile.ViewOrtho, canvas.NewImage(10, 10, 10))
	return newSession(t, c, name), c
}

func (s *session) setMode(mode profile.Mode) {
	s.t.Helper()
	require.NoError(s.t, s.mgr.SetMode(mode))
}

func (s *session) mode() profile.Mode {
	return s.mgr.Current().EffectiveMode()
}

func (s *session) mouse(kind event.Kind, mods key.Modifier, x, y float64) profile.Result {
	p := event.Point{X: x, Y: y}
	if kind.IsDown() {
		s.down, s.last = p, p
	}
	ev := &event.Event{
		Kind:         kind,
		Position:     p,
		DownPosition: s.down,
		LastPosition: s.last,
		Modifiers:    mods,
	}
	s.last = p
	return s.mgr.Dispatch(s.ctx, ev)
}

func (s *session) wheel(mods key.Modifier, delta int) profile.Result {
	return s.mgr.Dispatch(s.ctx, &event.Event{Kind: event.MouseWheel, Modifiers: mods, WheelDelta: delta})
}

func (s *session) char(mods key.Modifier, k key.Key, r rune) profile.Result {
	return s.mgr.Dispatch(s.ctx, &event.Event{Kind: event.Char, Modifiers: mods, Key: k, Rune: r})
}

func (s *session) keyDown(mods key.Modifier) profile.Result {
	return s.mgr.Dispatch(s.ctx, &event.Event{Kind: event.KeyDown, Modifiers: mods})
}
