package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

func TestTempModeExactMatch(t *testing.T) {
	tables := profile.NewTables().
		TempMode("nav", key.ModCtrl, "zoom").
		Build()

	mode, ok := tables.TempMode("nav", key.ModCtrl)
	assert.True(t, ok)
	assert.Equal(t, profile.Mode("zoom"), mode)

	// A superset of a registered combination does not match.
	_, ok = tables.TempMode("nav", key.ModCtrl|key.ModShift)
	assert.False(t, ok)

	// Nor does another base mode.
	_, ok = tables.TempMode("pan", key.ModCtrl)
	assert.False(t, ok)

	_, ok = tables.TempMode("nav", key.ModNone)
	assert.False(t, ok)
}

func TestTempModeMoreSpecificCombination(t *testing.T) {
	tables := profile.NewTables().
		TempMode("nav", key.ModCtrl, "zoom").
		TempMode("nav", key.ModCtrl|key.ModShift, "bricon").
		Build()

	mode, ok := tables.TempMode("nav", key.ModShift|key.ModCtrl)
	require.True(t, ok)
	assert.Equal(t, profile.Mode("bricon"), mode)
}

func TestTempModeKeysOrderIndependent(t *testing.T) {
	tables := profile.NewTables().
		TempMode("sel", key.ModCtrl|key.ModShift, "chsize").
		Build()

	a, okA := tables.TempModeKeys("sel", key.KeyShift, key.KeyCtrl)
	b, okB := tables.TempModeKeys("sel", key.KeyCtrl, key.KeyShift)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestTempModeKeysInvalidCombination(t *testing.T) {
	tables := profile.NewTables().
		TempMode("nav", key.ModCtrl, "zoom").
		Build()

	_, ok := tables.TempModeKeys("nav", key.KeyCtrl, key.KeyEnter)
	assert.False(t, ok, "a combination that cannot be canonicalized has no override")
}

func TestTempModePure(t *testing.T) {
	tables := viewTables()
	for _, mods := range []key.Modifier{key.ModNone, key.ModCtrl, key.ModShift, key.ModCtrl | key.ModShift, key.ModAlt} {
		m1, ok1 := tables.TempMode("nav", mods)
		m2, ok2 := tables.TempMode("nav", mods)
		assert.Equal(t, m1, m2)
		assert.Equal(t, ok1, ok2)
	}
}

func TestTablesExtendOverrides(t *testing.T) {
	parent := profile.NewTables().
		TempMode("nav", key.ModShift, "slice").
		TempMode("nav", key.ModAlt, "pan").
		Alternate(profile.On("nav", event.RightMouseDown), zoomRight).
		Fallback(pickDown, navDown).
		Build()

	child := profile.NewTables().
		Extend(parent).
		TempMode("nav", key.ModShift, "pick").
		Alternate(selRight, deselDown).
		Build()

	mode, ok := child.TempMode("nav", key.ModShift)
	require.True(t, ok)
	assert.Equal(t, profile.Mode("pick"), mode)

	entries := child.TempModes()
	require.Len(t, entries, 2)
	assert.Equal(t, profile.Mode("nav"), entries[0].Base)
	assert.Equal(t, key.ModShift, entries[0].Modifiers, "override keeps the inherited position")

	assert.Len(t, child.Alternates(), 2)
	assert.Len(t, child.Fallbacks(), 1)

	// Parent is untouched.
	mode, _ = parent.TempMode("nav", key.ModShift)
	assert.Equal(t, profile.Mode("slice"), mode)
}

func TestTablesRemoveAlternate(t *testing.T) {
	from := profile.On("nav", event.RightMouseDown)
	tables := profile.NewTables().
		Alternate(from, zoomRight).
		Alternate(profile.On("nav", event.MiddleMouseDrag), panDrag).
		RemoveAlternate(from).
		Build()

	_, ok := tables.Alternate(from)
	assert.False(t, ok)
	require.Len(t, tables.Alternates(), 1)
	assert.Equal(t, profile.On("nav", event.MiddleMouseDrag), tables.Alternates()[0].From)
}

func TestTablesRemoveFallback(t *testing.T) {
	tables := profile.NewTables().
		Fallback(pickDown, navDown).
		RemoveFallback(pickDown).
		RemoveFallback(navDown).
		Build()

	_, ok := tables.Fallback(pickDown)
	assert.False(t, ok)
	assert.Empty(t, tables.Fallbacks())
}

func TestTablesRemoveTempMode(t *testing.T) {
	tables := profile.NewTables().
		TempMode("nav", key.ModCtrl, "zoom").
		TempMode("nav", key.ModAlt, "pan").
		RemoveTempMode("nav", key.ModCtrl).
		RemoveTempMode("nav", key.ModShift).
		Build()

	_, ok := tables.TempMode("nav", key.ModCtrl)
	assert.False(t, ok)
	mode, ok := tables.TempMode("nav", key.ModAlt)
	require.True(t, ok)
	assert.Equal(t, profile.Mode("pan"), mode)
	require.Len(t, tables.TempModes(), 1)
	assert.Equal(t, key.ModAlt, tables.TempModes()[0].Modifiers)
}

func TestTablesIsEmpty(t *testing.T) {
	assert.True(t, profile.NewTables().Build().IsEmpty())
	assert.False(t, viewTables().IsEmpty())
}
