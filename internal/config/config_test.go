package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
	"github.com/dshills/viewprofile/internal/profiles"
)

const sample = `
[log]
level = "DEBUG"
format = "json"

[session]
view = "lightbox"
profile = "view"
width = 16
height = 16
depth = 8

[[temp_mode]]
handler = "orthoview"
mode = "nav"
modifiers = "ctrl+alt"
target = "pick"

[[alternate]]
handler = "orthoview"
mode = "nav"
event = "RightMouseDown"
remove = true

[[fallback]]
handler = "orthoedit"
mode = "sel"
event = "Char"
target_mode = "nav"
target_event = "Char"
`

func load(t *testing.T, src string) (*Settings, error) {
	t.Helper()
	return NewLoader("").LoadFrom(strings.NewReader(src))
}

func TestLoadDefaults(t *testing.T) {
	s, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, profile.ViewOrtho, s.View())
}

func TestLoadSample(t *testing.T) {
	s, err := load(t, sample)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, profile.ViewLightBox, s.View())
	assert.Equal(t, 8, s.Session.Depth)

	require.Len(t, s.TempModes, 1)
	assert.Equal(t, "ctrl+alt", s.TempModes[0].Modifiers)
	require.Len(t, s.Alternates, 1)
	assert.True(t, s.Alternates[0].Remove)
	require.Len(t, s.Fallbacks, 1)
	assert.Equal(t, "Char", s.Fallbacks[0].TargetEvent)

	lc := s.Logging()
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, "debug", lc.Level.String())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VIEWPROFILE_LOG_LEVEL", "trace")
	t.Setenv("VIEWPROFILE_SESSION_WIDTH", "100")

	s, err := load(t, sample)
	require.NoError(t, err)
	assert.Equal(t, "trace", s.Log.Level)
	assert.Equal(t, 100, s.Session.Width)
}

func TestLoadValidation(t *testing.T) {
	_, err := load(t, `
[log]
level = "loud"
format = "xml"

[session]
view = "cinema"
width = 1

[[temp_mode]]
handler = "orthoview"
mode = "nav"
modifiers = ""
target = "zoom"

[[alternate]]
handler = "orthoview"
mode = "nav"
event = "Wiggle"
target_mode = "pan"
target_event = "LeftMouseDrag"
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	paths := make([]string, len(errs))
	for i, e := range errs {
		paths[i] = e.Path
	}
	assert.ElementsMatch(t, []string{
		"log.level",
		"log.format",
		"session.view",
		"session.width",
		"temp_mode[0].modifiers",
		"alternate[0].event",
	}, paths)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ErrCodeInvalidEnum, ve.Code)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.toml")).Load()
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	l := NewLoader("")
	s, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, "lightbox", s.Session.View)
}

func TestLoadMalformed(t *testing.T) {
	_, err := load(t, "[log\nlevel=")
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestEncodeSettingsRoundTrip(t *testing.T) {
	s, err := load(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSettings(&buf, s))

	again, err := load(t, buf.String())
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestApplyOverrides(t *testing.T) {
	s, err := load(t, sample)
	require.NoError(t, err)

	base := profiles.Default()
	cfg, err := Apply(context.Background(), base, s)
	require.NoError(t, err)
	require.NotSame(t, base, cfg)

	view := cfg.Tables(profiles.OrthoViewType)
	mode, ok := view.TempMode(profiles.ModeNav, key.ModCtrl|key.ModAlt)
	assert.True(t, ok)
	assert.Equal(t, profiles.ModePick, mode)

	_, ok = view.Alternate(profile.On(profiles.ModeNav, event.RightMouseDown))
	assert.False(t, ok, "alternate removed")

	to, ok := cfg.Tables(profiles.OrthoEditType).Fallback(profile.On(profiles.ModeSel, event.Char))
	assert.True(t, ok)
	assert.Equal(t, profile.On(profiles.ModeNav, event.Char), to)

	_, ok = base.Tables(profiles.OrthoViewType).TempMode(profiles.ModeNav, key.ModCtrl|key.ModAlt)
	assert.False(t, ok, "base configuration untouched")
	_, ok = base.Tables(profiles.OrthoViewType).Alternate(profile.On(profiles.ModeNav, event.RightMouseDown))
	assert.True(t, ok)
}

func TestApplyRemovesTempMode(t *testing.T) {
	s, err := load(t, `
[[temp_mode]]
handler = "orthoview"
mode = "nav"
modifiers = "ctrl"
remove = true
`)
	require.NoError(t, err)

	base := profiles.Default()
	cfg, err := Apply(context.Background(), base, s)
	require.NoError(t, err)

	view := cfg.Tables(profiles.OrthoViewType)
	_, ok := view.TempMode(profiles.ModeNav, key.ModCtrl)
	assert.False(t, ok, "temporary mode removed")
	mode, ok := view.TempMode(profiles.ModeNav, key.ModAlt)
	assert.True(t, ok)
	assert.Equal(t, profiles.ModePan, mode)

	mode, ok = base.Tables(profiles.OrthoViewType).TempMode(profiles.ModeNav, key.ModCtrl)
	assert.True(t, ok, "base configuration untouched")
	assert.Equal(t, profiles.ModeZoom, mode)
}

func TestApplyNothing(t *testing.T) {
	base := profiles.Default()
	cfg, err := Apply(context.Background(), base, Default())
	require.NoError(t, err)
	assert.Same(t, base, cfg)
}

func TestApplyUnknownHandler(t *testing.T) {
	s := Default()
	s.TempModes = []TempModeEntry{{Handler: "orthovoew", Mode: "nav", Modifiers: "ctrl", Target: "zoom"}}

	_, err := Apply(context.Background(), profiles.Default(), s)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ErrCodeUnknownHandler, ve.Code)
	assert.Equal(t, "temp_mode[0].handler", ve.Path)
}

func TestApplyRejectsChains(t *testing.T) {
	s := Default()
	s.Alternates = []RedirectEntry{{
		Handler:     "orthoview",
		Mode:        "zoom",
		Event:       "RightMouseDown",
		TargetMode:  "pan",
		TargetEvent: "LeftMouseDrag",
	}}

	_, err := Apply(context.Background(), profiles.Default(), s)
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrConfig)
	assert.Contains(t, err.Error(), "target is itself redirected")
}

func TestApplyRejectsUnknownMode(t *testing.T) {
	s := Default()
	s.TempModes = []TempModeEntry{{Handler: "lightboxview", Mode: "view", Modifiers: "alt", Target: "warp"}}

	_, err := Apply(context.Background(), profiles.Default(), s)
	assert.ErrorIs(t, err, profile.ErrConfig)
}

func TestEncodeTables(t *testing.T) {
	cfg := profiles.Default()

	var buf bytes.Buffer
	require.NoError(t, EncodeTOML(&buf, cfg))

	var snap Snapshot
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &snap))
	assert.Len(t, snap.Profiles, len(cfg.Modes().Bindings()))
	assert.Equal(t, NewSnapshot(cfg), snap)

	data, err := MarshalJSON(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "orthoview"`)
	assert.Contains(t, string(data), `"from": "nav/RightMouseDown"`)

	buf.Reset()
	require.NoError(t, EncodeYAML(&buf, cfg))
	var fromYAML Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, snap, fromYAML)
}
