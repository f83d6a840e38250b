package command

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/omap-go/internal/bench"
	"github.com/yndnr/omap-go/internal/cli/output"
	"github.com/yndnr/omap-go/internal/infra/confloader"
	"github.com/yndnr/omap-go/internal/telemetry/logger"
	"github.com/yndnr/omap-go/internal/telemetry/metric"
)

// benchFileConfig is the shape of the bench section in config files.
type benchFileConfig struct {
	Bench bench.Config `koanf:"bench"`
}

// BenchCommand returns the bench subcommand.
func BenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Run the ordered map workload benchmark",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "entries",
				Aliases: []string{"n"},
				Usage:   "Number of keys to insert",
			},
			&cli.Float64Flag{
				Name:  "update-ratio",
				Usage: "Fraction of keys to re-set in place",
			},
			&cli.Float64Flag{
				Name:  "delete-ratio",
				Usage: "Fraction of keys to delete",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "Mutation rate limit in ops/sec (0 = unlimited)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Key generation seed (0 = time-derived)",
			},
			&cli.BoolFlag{
				Name:  "no-verify",
				Usage: "Skip order-digest verification",
			},
		},
		Action: runBench,
	}
}

// benchConfig resolves the run configuration with priority
// flags > env > file > defaults.
func benchConfig(c *cli.Context) (bench.Config, error) {
	loader := confloader.NewLoader(
		confloader.WithConfigFile(c.String("config")),
	)

	fileCfg := benchFileConfig{Bench: bench.DefaultConfig()}
	if err := loader.Load(&fileCfg); err != nil {
		return bench.Config{}, err
	}
	cfg := fileCfg.Bench

	if c.IsSet("entries") {
		cfg.Entries = c.Int("entries")
	}
	if c.IsSet("update-ratio") {
		cfg.UpdateRatio = c.Float64("update-ratio")
	}
	if c.IsSet("delete-ratio") {
		cfg.DeleteRatio = c.Float64("delete-ratio")
	}
	if c.IsSet("rate") {
		cfg.RateLimit = c.Float64("rate")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.Bool("no-verify") {
		cfg.Verify = false
	}

	return cfg, nil
}

func runBench(c *cli.Context) error {
	cfg, err := benchConfig(c)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	reg := metric.NewRegistry()
	runner, err := bench.NewRunner(cfg, logger.Default(), reg)
	if err != nil {
		return err
	}

	res, err := runner.Run(c.Context)
	if err != nil {
		return err
	}

	table := &output.Table{}
	table.SetHeaders("PHASE", "OPS", "DURATION", "OPS/SEC")
	for _, p := range res.Phases {
		table.AddRow(
			p.Phase,
			fmt.Sprintf("%d", p.Ops),
			p.Duration.Round(time.Microsecond).String(),
			fmt.Sprintf("%.0f", p.OpsPerSec),
		)
	}
	if err := table.Render(os.Stdout); err != nil {
		return err
	}

	if cfg.Verify {
		fmt.Fprintf(os.Stdout, "\nfinal length: %d, order verified: %v\n", res.FinalLen, res.OrderVerified)
	} else {
		fmt.Fprintf(os.Stdout, "\nfinal length: %d\n", res.FinalLen)
	}

	snap, err := reg.Snapshot()
	if err != nil {
		return err
	}
	logger.Debug("metrics snapshot", "metrics", snap)

	return nil
}
