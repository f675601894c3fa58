package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/isocountry/internal/output"
	"github.com/hightemp/isocountry/pkg/country"
)

func newResolveCmd(a *app) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "resolve <input>...",
		Short: "Resolve inputs in one key space",
		Long: `Resolves each input in a single key space and prints one row per input.

Key spaces:
  any         every space at once (default, or "space" from config)
  numeric     zero-padded numeric code, e.g. 004
  value       numeric value, e.g. 4
  alpha2      two-letter code
  alpha3      three-letter code
  name        canonical name without spaces, e.g. TheNetherlands
  identifier  snake_case canonical name, e.g. the_netherlands
  alias       alias only, e.g. Holland

Examples:
  isocountry resolve --by alpha3 USA GBR
  isocountry resolve --by alias Burma --format json`,
		Args: invalidInputArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("by") {
				by = a.cfg.Space
			}
			space, err := country.ParseSpace(by)
			if err != nil {
				return exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
			}

			result, err := a.newProcessor(space).ResolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := output.Render(cmd.OutOrStdout(), a.cfg.Format, result); err != nil {
				return err
			}
			return notFoundExit(result)
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "key space: any, numeric, value, alpha2, alpha3, name, identifier or alias (default from config)")
	return cmd
}
