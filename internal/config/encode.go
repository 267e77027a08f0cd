package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/viewprofile/internal/profile"
)

// Snapshot is a serializable view of a profile.Config.
type Snapshot struct {
	Profiles []ProfileInfo `toml:"profile" json:"profiles" yaml:"profile"`
	Handlers []HandlerInfo `toml:"handler" json:"handlers" yaml:"handler"`
}

// ProfileInfo describes one mode table binding.
type ProfileInfo struct {
	View    string `toml:"view" json:"view" yaml:"view"`
	Name    string `toml:"name" json:"name" yaml:"name"`
	Handler string `toml:"handler" json:"handler" yaml:"handler"`
	Default bool   `toml:"default" json:"default" yaml:"default"`
}

// HandlerInfo describes one handler type and its tables.
type HandlerInfo struct {
	Name       string         `toml:"name" json:"name" yaml:"name"`
	Modes      []string       `toml:"modes" json:"modes" yaml:"modes"`
	Default    string         `toml:"default" json:"default" yaml:"default"`
	Methods    []string       `toml:"methods" json:"methods" yaml:"methods"`
	TempModes  []TempModeInfo `toml:"temp_mode,omitempty" json:"temp_modes,omitempty" yaml:"temp_mode,omitempty"`
	Alternates []RedirectInfo `toml:"alternate,omitempty" json:"alternates,omitempty" yaml:"alternate,omitempty"`
	Fallbacks  []RedirectInfo `toml:"fallback,omitempty" json:"fallbacks,omitempty" yaml:"fallback,omitempty"`
}

// TempModeInfo is one temporary-mode entry.
type TempModeInfo struct {
	Mode      string `toml:"mode" json:"mode" yaml:"mode"`
	Modifiers string `toml:"modifiers" json:"modifiers" yaml:"modifiers"`
	Target    string `toml:"target" json:"target" yaml:"target"`
}

// RedirectInfo is one alternate or fallback entry.
type RedirectInfo struct {
	From string `toml:"from" json:"from" yaml:"from"`
	To   string `toml:"to" json:"to" yaml:"to"`
}

// NewSnapshot captures cfg.
func NewSnapshot(cfg *profile.Config) Snapshot {
	mt := cfg.Modes()
	var snap Snapshot

	for _, b := range mt.Bindings() {
		def, _ := mt.Default(b.View)
		info := ProfileInfo{View: b.View.String(), Name: b.Name, Default: def == b.Name}
		if b.Handler != nil {
			info.Handler = b.Handler.Name()
		}
		snap.Profiles = append(snap.Profiles, info)
	}

	for _, ht := range mt.HandlerTypes() {
		t := cfg.Tables(ht)
		info := HandlerInfo{
			Name:    ht.Name(),
			Default: string(ht.DefaultMode()),
		}
		for _, m := range ht.Modes() {
			info.Modes = append(info.Modes, string(m))
		}
		for _, tr := range ht.Triggers() {
			info.Methods = append(info.Methods, tr.String())
		}
		for _, e := range t.TempModes() {
			info.TempModes = append(info.TempModes, TempModeInfo{
				Mode:      string(e.Base),
				Modifiers: e.Modifiers.String(),
				Target:    string(e.Mode),
			})
		}
		info.Alternates = redirectInfo(t.Alternates())
		info.Fallbacks = redirectInfo(t.Fallbacks())
		snap.Handlers = append(snap.Handlers, info)
	}
	return snap
}

func redirectInfo(rs []profile.Redirect) []RedirectInfo {
	var out []RedirectInfo
	for _, r := range rs {
		out = append(out, RedirectInfo{From: r.From.String(), To: r.To.String()})
	}
	return out
}

// EncodeTOML writes cfg as TOML.
func EncodeTOML(w io.Writer, cfg *profile.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(NewSnapshot(cfg)); err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	return nil
}

// MarshalJSON returns cfg as indented JSON.
func MarshalJSON(cfg *profile.Config) ([]byte, error) {
	data, err := json.MarshalIndent(NewSnapshot(cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tables: %w", err)
	}
	return data, nil
}

// EncodeYAML writes cfg as YAML.
func EncodeYAML(w io.Writer, cfg *profile.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(cfg)); err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	return enc.Close()
}

// EncodeSettings writes s as a TOML configuration file.
func EncodeSettings(w io.Writer, s *Settings) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}
