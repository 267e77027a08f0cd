package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "VIEWPROFILE"

// Loader reads Settings from a TOML file and the environment.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a loader. An empty path searches the default config
// directory and the working directory for config.toml; a missing file is
// not an error then. An explicit path must exist.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return &Loader{v: v, path: path}
}

// Viper exposes the underlying instance so command-line flags can be bound.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads, normalizes and validates the settings.
func (l *Loader) Load() (*Settings, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.path != "" || !errors.As(err, &notFound) {
			return nil, &ParseError{Path: l.describe(), Err: err}
		}
	}
	return l.settings()
}

// LoadFrom reads settings from r instead of a file.
func (l *Loader) LoadFrom(r io.Reader) (*Settings, error) {
	if err := l.v.ReadConfig(r); err != nil {
		return nil, &ParseError{Path: "<reader>", Err: err}
	}
	return l.settings()
}

// ConfigFileUsed returns the file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) settings() (*Settings, error) {
	s := &Settings{}
	if err := l.v.Unmarshal(s); err != nil {
		return nil, &ParseError{Path: l.describe(), Err: err}
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *Loader) describe() string {
	if f := l.v.ConfigFileUsed(); f != "" {
		return f
	}
	if l.path != "" {
		return l.path
	}
	return "config.toml"
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("session.view", d.Session.View)
	v.SetDefault("session.profile", d.Session.Profile)
	v.SetDefault("session.width", d.Session.Width)
	v.SetDefault("session.height", d.Session.Height)
	v.SetDefault("session.depth", d.Session.Depth)
}

// Dir returns the configuration directory, honouring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "viewprofile"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "viewprofile"), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
