package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dshills/viewprofile/internal/config"
)

func newTablesCmd(o *options) *cobra.Command {
	var (
		format string
		query  string
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the effective interaction tables",
		Long: "Print the mode table and the temporary-mode, alternate and fallback tables of " +
			"every handler type, after the configured overrides are applied. --query selects " +
			"part of the JSON form with a gjson path, for example handlers.#(name==\"orthoedit\").alternates.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := o.setup(cmd, nil)
			if err != nil {
				return err
			}
			cfg, err := o.tables(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if query != "" {
				data, err := config.MarshalJSON(cfg)
				if err != nil {
					return err
				}
				res := gjson.GetBytes(data, query)
				if !res.Exists() {
					return fmt.Errorf("query %q matched nothing", query)
				}
				_, err = fmt.Fprintln(out, res.String())
				return err
			}

			switch format {
			case "toml":
				return config.EncodeTOML(out, cfg)
			case "yaml":
				return config.EncodeYAML(out, cfg)
			case "json":
				data, err := config.MarshalJSON(cfg)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			return fmt.Errorf("unknown format %q (want toml, yaml or json)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, yaml or json")
	cmd.Flags().StringVarP(&query, "query", "q", "", "gjson path selecting part of the JSON output")
	return cmd
}
