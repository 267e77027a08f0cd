package config

import (
	"fmt"
	"strings"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
)

// Settings is the complete user configuration.
type Settings struct {
	Log        LogConfig       `mapstructure:"log" toml:"log"`
	Session    SessionConfig   `mapstructure:"session" toml:"session"`
	TempModes  []TempModeEntry `mapstructure:"temp_mode" toml:"temp_mode,omitempty"`
	Alternates []RedirectEntry `mapstructure:"alternate" toml:"alternate,omitempty"`
	Fallbacks  []RedirectEntry `mapstructure:"fallback" toml:"fallback,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error or disabled.
	Level string `mapstructure:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format"`
}

// SessionConfig holds the defaults of the interactive session.
type SessionConfig struct {
	// View is the panel kind shown at start.
	View string `mapstructure:"view" toml:"view"`
	// Profile is the profile activated at start; empty means the view's
	// default profile.
	Profile string `mapstructure:"profile" toml:"profile"`
	// Width, Height and Depth are the demo volume dimensions.
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`
	Depth  int `mapstructure:"depth" toml:"depth"`
}

// TempModeEntry overrides one temporary-mode entry. With Remove set the
// entry is dropped and Target is ignored.
type TempModeEntry struct {
	Handler   string `mapstructure:"handler" toml:"handler"`
	Mode      string `mapstructure:"mode" toml:"mode"`
	Modifiers string `mapstructure:"modifiers" toml:"modifiers"`
	Target    string `mapstructure:"target" toml:"target,omitempty"`
	Remove    bool   `mapstructure:"remove" toml:"remove,omitempty"`
}

// RedirectEntry overrides one alternate or fallback entry. With Remove set
// the entry is dropped instead and the target fields are ignored.
type RedirectEntry struct {
	Handler     string `mapstructure:"handler" toml:"handler"`
	Mode        string `mapstructure:"mode" toml:"mode"`
	Event       string `mapstructure:"event" toml:"event"`
	TargetMode  string `mapstructure:"target_mode" toml:"target_mode,omitempty"`
	TargetEvent string `mapstructure:"target_event" toml:"target_event,omitempty"`
	Remove      bool   `mapstructure:"remove" toml:"remove,omitempty"`
}

// Volume dimension limits of the session.
const (
	MinDim = 2
	MaxDim = 512
)

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Log: LogConfig{Level: "info", Format: "console"},
		Session: SessionConfig{
			View:   profile.ViewOrtho.String(),
			Width:  48,
			Height: 48,
			Depth:  24,
		},
	}
}

// Logging returns the logging configuration. Call Validate first.
func (s *Settings) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(s.Log.Level); err == nil {
		cfg.Level = lvl
	}
	cfg.Format = s.Log.Format
	return cfg
}

// View returns the parsed session view. Call Validate first.
func (s *Settings) View() profile.ViewType {
	v, err := profile.ParseViewType(s.Session.View)
	if err != nil {
		return profile.ViewOrtho
	}
	return v
}

// normalize lowercases enum fields and trims whitespace.
func (s *Settings) normalize() {
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	if s.Log.Format == "" {
		s.Log.Format = "console"
	}
	s.Session.View = strings.ToLower(strings.TrimSpace(s.Session.View))
	s.Session.Profile = strings.TrimSpace(s.Session.Profile)
}

// Validate checks every field that can be checked without the interaction
// tables. Override entries are checked for well-formed names only; whether
// they fit the tables is decided by Apply.
func (s *Settings) Validate() error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		errs.add("log.level", ErrCodeInvalidEnum, s.Log.Level, "must be trace, debug, info, warn, error or disabled")
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		errs.add("log.format", ErrCodeInvalidEnum, s.Log.Format, "must be console or json")
	}

	if _, err := profile.ParseViewType(s.Session.View); err != nil {
		errs.add("session.view", ErrCodeInvalidEnum, s.Session.View, "unknown view type")
	}
	for _, d := range []struct {
		path string
		v    int
	}{
		{"session.width", s.Session.Width},
		{"session.height", s.Session.Height},
		{"session.depth", s.Session.Depth},
	} {
		if d.v < MinDim || d.v > MaxDim {
			errs.add(d.path, ErrCodeOutOfRange, d.v, "must be between %d and %d", MinDim, MaxDim)
		}
	}

	for i, e := range s.TempModes {
		p := fmt.Sprintf("temp_mode[%d]", i)
		requireField(&errs, p+".handler", e.Handler)
		requireField(&errs, p+".mode", e.Mode)
		if !e.Remove {
			requireField(&errs, p+".target", e.Target)
		}
		mods, err := key.ParseModifiers(e.Modifiers)
		switch {
		case err != nil:
			errs.add(p+".modifiers", ErrCodeInvalidEnum, e.Modifiers, "%v", err)
		case mods.IsEmpty():
			errs.add(p+".modifiers", ErrCodeRequiredMissing, e.Modifiers, "at least one modifier is required")
		}
	}
	validateRedirects(&errs, "alternate", s.Alternates)
	validateRedirects(&errs, "fallback", s.Fallbacks)

	return errs.err()
}

func validateRedirects(errs *ValidationErrors, section string, entries []RedirectEntry) {
	for i, e := range entries {
		p := fmt.Sprintf("%s[%d]", section, i)
		requireField(errs, p+".handler", e.Handler)
		requireField(errs, p+".mode", e.Mode)
		validateKind(errs, p+".event", e.Event)
		if e.Remove {
			continue
		}
		requireField(errs, p+".target_mode", e.TargetMode)
		validateKind(errs, p+".target_event", e.TargetEvent)
	}
}

func requireField(errs *ValidationErrors, path, value string) {
	if strings.TrimSpace(value) == "" {
		errs.add(path, ErrCodeRequiredMissing, value, "is required")
	}
}

func validateKind(errs *ValidationErrors, path, value string) {
	if _, err := event.ParseKind(value); err != nil {
		errs.add(path, ErrCodeInvalidEnum, value, "unknown event name")
	}
}
