// Package command provides CLI command definitions for the omap tool.
//
// It uses urfave/cli/v2 for command parsing.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/omap-go/internal/infra/buildinfo"
	"github.com/yndnr/omap-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "omap",
		Usage:   "ordered map workload and inspection tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BenchCommand(),
			DemoCommand(),
		},
		Before: func(c *cli.Context) error {
			l, err := logger.New(logger.Config{
				Level:  c.String("log-level"),
				Format: c.String("log-format"),
			})
			if err != nil {
				return err
			}
			logger.SetDefault(l)
			return nil
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (YAML)",
			EnvVars: []string{"OMAP_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"OMAP_LOG_LEVEL"},
			Value:   "info",
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: json, text",
			EnvVars: []string{"OMAP_LOG_FORMAT"},
			Value:   "text",
		},
	}
}
