package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Build information injected at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trackify"),
		kong.Description("Workout tracking API with split rotation"),
		kong.Vars{
			"version": fmt.Sprintf("trackify %s (commit: %s)", Version, Commit),
		},
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
