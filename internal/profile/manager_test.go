package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

func newManager(t *testing.T, view profile.ViewType) *profile.Manager {
	t.Helper()
	f, err := newFixture()
	require.NoError(t, err)
	return profile.NewManager(f.cfg, testPanel{view})
}

func TestManagerWithoutProfile(t *testing.T) {
	m := newManager(t, profile.ViewOrtho)

	assert.Nil(t, m.Current())
	assert.Equal(t, "", m.Name())
	res := m.Dispatch(context.Background(), ev(event.LeftMouseDown, key.ModNone))
	assert.Equal(t, profile.Unhandled, res.Outcome)
	assert.ErrorIs(t, m.SetMode("nav"), profile.ErrNotFound)
}

func TestManagerActivateDefault(t *testing.T) {
	m := newManager(t, profile.ViewOrtho)

	require.NoError(t, m.ActivateDefault(context.Background()))
	assert.Equal(t, "view", m.Name())
	assert.Equal(t, "view", m.Current().Type().Name())
	assert.Equal(t, []string{"view", "edit"}, m.Available())
}

func TestManagerActivateSwitchDestroysOld(t *testing.T) {
	m := newManager(t, profile.ViewOrtho)
	ctx := context.Background()

	var changes [][2]string
	m.OnProfileChange(func(from, to string) {
		changes = append(changes, [2]string{from, to})
	})

	require.NoError(t, m.Activate(ctx, "view"))
	old := m.Current()
	oldHandler := old.Handler().(*recorder)

	require.NoError(t, m.Activate(ctx, "edit"))
	assert.True(t, old.Destroyed())
	assert.Equal(t, 1, oldHandler.destroyed)
	assert.Equal(t, profile.Mode("sel"), m.Current().Mode())

	assert.Equal(t, [][2]string{{"", "view"}, {"view", "edit"}}, changes)
}

func TestManagerActivateSameIsNoop(t *testing.T) {
	m := newManager(t, profile.ViewOrtho)
	ctx := context.Background()

	require.NoError(t, m.Activate(ctx, "view"))
	first := m.Current()
	require.NoError(t, m.SetMode("zoom"))

	require.NoError(t, m.Activate(ctx, "view"))
	assert.Same(t, first, m.Current())
	assert.Equal(t, profile.Mode("zoom"), m.Current().Mode())
}

func TestManagerActivateUnknownKeepsCurrent(t *testing.T) {
	m := newManager(t, profile.ViewLightBox)
	ctx := context.Background()

	require.NoError(t, m.Activate(ctx, "view"))
	current := m.Current()

	err := m.Activate(ctx, "edit")
	assert.ErrorIs(t, err, profile.ErrNotFound)
	assert.Same(t, current, m.Current())
	assert.False(t, current.Destroyed())
}

func TestManagerActivateConstructorError(t *testing.T) {
	failing := errors.New("no canvas")
	ht := profile.Define(profile.Spec[*recorder]{
		Name:    "failing",
		Modes:   []profile.Mode{"nav"},
		Default: "nav",
		New: func(profile.Controller, profile.Panel) (*recorder, error) {
			return nil, failing
		},
	})
	cfg, err := profile.NewBuilder().Bind(profile.ViewOrtho, "view", ht).Build()
	require.NoError(t, err)

	m := profile.NewManager(cfg, testPanel{profile.ViewOrtho})
	err = m.Activate(context.Background(), "view")
	assert.ErrorIs(t, err, failing)
	assert.Nil(t, m.Current())
}

func TestManagerDispatchAndClose(t *testing.T) {
	m := newManager(t, profile.ViewOrtho)
	ctx := context.Background()
	require.NoError(t, m.Activate(ctx, "edit"))

	res := m.Dispatch(ctx, ev(event.RightMouseDown, key.ModNone))
	assert.Equal(t, deselDown, res.Invoked)

	p := m.Current()
	m.Close()
	assert.True(t, p.Destroyed())
	assert.Nil(t, m.Current())
	assert.Equal(t, "", m.Name())

	// Reactivation after close works.
	require.NoError(t, m.Activate(ctx, "edit"))
	assert.NotSame(t, p, m.Current())
}
