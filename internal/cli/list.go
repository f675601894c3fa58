package cli

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hightemp/isocountry/internal/output"
	"github.com/hightemp/isocountry/pkg/country"
)

// sortKeys maps --sort values to the country field they order by.
var sortKeys = map[string]func(country.Country) string{
	"name":    country.Country.SortKey,
	"alpha2":  country.Country.Alpha2,
	"alpha3":  country.Country.Alpha3,
	"numeric": country.Country.Numeric,
}

func newListCmd(a *app) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every country",
		Long: `Lists every country of the ISO 3166-1 reference data.

Examples:
  isocountry list
  isocountry list --sort numeric
  isocountry list --format yaml`,
		Args: invalidInputArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := sortKeys[sortBy]
			if !ok {
				return exitWithCode(ExitInvalidInput,
					fmt.Sprintf("Error: invalid sort %q: must be name, alpha2, alpha3 or numeric", sortBy))
			}

			countries := a.registry.All()
			slices.SortStableFunc(countries, func(x, y country.Country) int {
				return cmp.Compare(key(x), key(y))
			})

			list := make(output.CountryList, 0, len(countries))
			for _, c := range countries {
				list = append(list, output.NewCountryRow(c))
			}
			return output.Render(cmd.OutOrStdout(), a.cfg.Format, list)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort order: name, alpha2, alpha3 or numeric")
	return cmd
}
