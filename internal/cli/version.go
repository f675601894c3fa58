package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  invalidInputArgs(cobra.NoArgs),
		// Printing the version needs no config, logger or registry.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "isocountry %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}
