package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/viewprofile/internal/config"
	"github.com/dshills/viewprofile/internal/profile"
)

func newValidateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and the interaction tables",
		Long: "Load the configuration file, apply its table overrides to the built-in tables " +
			"and report every problem found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := o.setup(cmd, nil)
			if err != nil {
				if report(cmd.OutOrStdout(), err) {
					return errInvalid
				}
				return err
			}

			cfg, err := o.tables(ctx)
			if err != nil {
				if report(cmd.OutOrStdout(), err) {
					return errInvalid
				}
				return err
			}

			modes := cfg.Modes()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d profiles, %d handler types, %d views\n",
				len(modes.Bindings()), len(modes.HandlerTypes()), len(modes.Views()))
			return nil
		},
	}
}

var errInvalid = errors.New("configuration is invalid")

// report lists the individual problems of a validation failure. It returns
// false for errors of any other kind.
func report(w io.Writer, err error) bool {
	var ce *profile.ConfigError
	if errors.As(err, &ce) {
		for _, issue := range ce.Issues {
			fmt.Fprintf(w, "table: %s\n", issue)
		}
		return true
	}

	var ves config.ValidationErrors
	if errors.As(err, &ves) {
		for _, ve := range ves {
			fmt.Fprintf(w, "setting: %s\n", ve)
		}
		return true
	}

	var ve *config.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(w, "setting: %s\n", ve)
		return true
	}
	return false
}
