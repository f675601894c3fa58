package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/isocountry/internal/output"
	"github.com/hightemp/isocountry/pkg/country"
)

func newAliasesCmd(a *app) *cobra.Command {
	var deprecatedOnly bool

	cmd := &cobra.Command{
		Use:   "aliases [country]",
		Short: "List country aliases",
		Long: `Lists the aliases of every country, or of one country given in any form.
Deprecated aliases are former official names that still resolve.

Examples:
  isocountry aliases
  isocountry aliases --deprecated
  isocountry aliases GB`,
		Args: invalidInputArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.registry.Aliases()
			if deprecatedOnly {
				entries = a.registry.DeprecatedAliases()
			}

			if len(args) == 1 {
				c, err := a.registry.Parse(args[0])
				if err != nil {
					return exitWithCode(ExitNotFound, fmt.Sprintf("Error: %v", err))
				}
				entries = filterAliases(entries, c)
			}

			return output.Render(cmd.OutOrStdout(), a.cfg.Format, output.NewAliasList(entries))
		},
	}

	cmd.Flags().BoolVar(&deprecatedOnly, "deprecated", false, "only list deprecated aliases")
	return cmd
}

func filterAliases(entries []country.AliasEntry, c country.Country) []country.AliasEntry {
	var out []country.AliasEntry
	for _, e := range entries {
		if e.Country == c {
			out = append(out, e)
		}
	}
	return out
}
