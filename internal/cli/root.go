// Package cli implements the viewprofile commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/viewprofile/internal/config"
	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
	"github.com/dshills/viewprofile/internal/profiles"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// options holds the state shared by all commands.
type options struct {
	configPath string
	loader     *config.Loader
	settings   *config.Settings
}

// NewRootCmd creates the viewprofile command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "viewprofile",
		Short: "Inspect and exercise viewer interaction profiles",
		Long: "viewprofile validates the interaction-mode tables of the viewer, dumps them, " +
			"and runs an interactive terminal session driving a profile manager.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/viewprofile/config.toml)")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error or disabled")
	cmd.PersistentFlags().String("log-format", "", "log format: console or json")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newTablesCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newVersionCmd(info))

	return cmd
}

// flagKeys maps setting keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":       "log-level",
	"log.format":      "log-format",
	"session.view":    "view",
	"session.profile": "profile",
}

// load reads the settings, binding the command's flags over the file and
// environment values.
func (o *options) load(cmd *cobra.Command) (*config.Settings, error) {
	if o.settings != nil {
		return o.settings, nil
	}

	o.loader = config.NewLoader(o.configPath)
	v := o.loader.Viper()
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	s, err := o.loader.Load()
	if err != nil {
		return nil, err
	}
	o.settings = s
	return s, nil
}

// setup loads the settings and returns a context carrying the logger.
func (o *options) setup(cmd *cobra.Command, lc func(*logging.Config)) (context.Context, error) {
	s, err := o.load(cmd)
	if err != nil {
		return nil, err
	}

	cfg := s.Logging()
	cfg.Output = cmd.ErrOrStderr()
	if lc != nil {
		lc(&cfg)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithContext(ctx, logging.New(cfg))

	if f := o.loader.ConfigFileUsed(); f != "" {
		logging.FromContext(ctx).Debug().Str("file", f).Msg("configuration loaded")
	}
	return ctx, nil
}

// tables returns the default tables with the configured overrides applied.
func (o *options) tables(ctx context.Context) (*profile.Config, error) {
	return config.Apply(ctx, profiles.Default(), o.settings)
}
