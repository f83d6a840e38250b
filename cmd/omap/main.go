// Package main provides the entry point for the omap tool.
//
// omap is the command-line companion of the ordered map library,
// providing a workload benchmark and a small traversal demo.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yndnr/omap-go/internal/cli/command"
	"github.com/yndnr/omap-go/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	app := command.App()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
