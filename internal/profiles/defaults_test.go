package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/viewprofile/internal/profile"
)

func TestDefaultIsValid(t *testing.T) {
	cfg, err := DefaultBuilder().Build()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Same(t, Default(), Default())
}

func TestDefaultBindingsResolve(t *testing.T) {
	mt := Default().Modes()
	for _, b := range mt.Bindings() {
		ht, err := mt.Resolve(b.View, b.Name)
		require.NoError(t, err, "%s/%s", b.View, b.Name)
		require.NotNil(t, ht)
		assert.True(t, ht.HasMode(ht.DefaultMode()), "%s default mode", ht)
	}
}

func TestDefaultProfiles(t *testing.T) {
	mt := Default().Modes()

	assert.Equal(t, []string{"view", "edit", "crop", "annotate"}, mt.Profiles(profile.ViewOrtho))
	for _, v := range []profile.ViewType{
		profile.ViewLightBox,
		profile.ViewTimeSeries,
		profile.ViewHistogram,
		profile.ViewPowerSpectrum,
		profile.ViewScene3D,
	} {
		assert.Equal(t, []string{"view"}, mt.Profiles(v), v.String())
	}

	def, ok := mt.Default(profile.ViewOrtho)
	require.True(t, ok)
	assert.Equal(t, "view", def)
}

func TestDefaultRedirectsTakeOneHop(t *testing.T) {
	cfg := Default()
	for _, ht := range cfg.Modes().HandlerTypes() {
		tables := cfg.Tables(ht)
		for _, r := range tables.Alternates() {
			_, chained := tables.Alternate(r.To)
			assert.False(t, chained, "%s: %s -> %s is chained", ht, r.From, r.To)
			assert.True(t, ht.HasMethod(r.To), "%s: %s -> %s has no target method", ht, r.From, r.To)
		}
		for _, r := range tables.Fallbacks() {
			assert.True(t, ht.HasMethod(r.To), "%s: fallback %s -> %s has no target method", ht, r.From, r.To)
		}
	}
}

func TestDefaultTempModesArePure(t *testing.T) {
	cfg := Default()
	for _, ht := range cfg.Modes().HandlerTypes() {
		tables := cfg.Tables(ht)
		for _, e := range tables.TempModes() {
			m1, ok1 := tables.TempMode(e.Base, e.Modifiers)
			m2, ok2 := tables.TempMode(e.Base, e.Modifiers)
			assert.True(t, ok1 && ok2)
			assert.Equal(t, e.Mode, m1)
			assert.Equal(t, m1, m2)
		}
	}
}

func TestDefaultEditInheritsViewTables(t *testing.T) {
	cfg := Default()
	view, edit := cfg.Tables(OrthoViewType), cfg.Tables(OrthoEditType)

	for _, e := range view.TempModes() {
		m, ok := edit.TempMode(e.Base, e.Modifiers)
		assert.True(t, ok, "edit lost %s+%s", e.Base, e.Modifiers)
		assert.Equal(t, e.Mode, m)
	}
	for _, r := range view.Alternates() {
		to, ok := edit.Alternate(r.From)
		assert.True(t, ok, "edit lost alternate %s", r.From)
		assert.Equal(t, r.To, to)
	}
}
