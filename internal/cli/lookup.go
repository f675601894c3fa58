package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/isocountry/internal/batch"
	"github.com/hightemp/isocountry/internal/output"
	"github.com/hightemp/isocountry/pkg/country"
)

func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	space, err := country.ParseSpace(a.cfg.Space)
	if err != nil {
		return exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
	}
	processor := a.newProcessor(space)

	// Check if we have an input argument or should read from stdin
	if len(args) == 1 {
		return a.lookupSingle(cmd, processor, args[0])
	}

	if isTerminal(cmd.InOrStdin()) {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	result, err := processor.ProcessInput(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Format)
	if err != nil {
		return err
	}
	return notFoundExit(result)
}

func (a *app) lookupSingle(cmd *cobra.Command, processor *batch.Processor, input string) error {
	result := processor.Resolve(input)
	if result.Error != "" {
		return exitWithCode(ExitNotFound, fmt.Sprintf("Error: %s", result.Error))
	}
	return output.Render(cmd.OutOrStdout(), a.cfg.Format, result)
}

func (a *app) newProcessor(space country.Space) *batch.Processor {
	return batch.NewProcessor(a.registry, space, a.cfg.Concurrency, a.logger)
}

// notFoundExit reports ExitNotFound when any batch input failed to resolve.
// The results themselves have already been written.
func notFoundExit(result *output.BatchResult) error {
	if failed := result.Failed(); failed > 0 {
		return exitWithCode(ExitNotFound, fmt.Sprintf("%d of %d inputs not found", failed, len(result.Results)))
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
