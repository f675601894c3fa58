// isocountry is a CLI tool that resolves country identifiers to ISO 3166-1 records.
package main

import (
	"github.com/hightemp/isocountry/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
