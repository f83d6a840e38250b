package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/omap-go/internal/cli/output"
	"github.com/yndnr/omap-go/pkg/omap"
)

// DemoCommand returns the demo subcommand.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "Build an ordered map from key=value arguments and print its traversals",
		ArgsUsage: "key=value [key=value ...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "delete",
				Aliases: []string{"d"},
				Usage:   "Delete a key after all inserts (repeatable)",
			},
		},
		Action: runDemo,
	}
}

func runDemo(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one key=value argument is required")
	}

	m := omap.New[string, string]()
	for _, arg := range c.Args().Slice() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return fmt.Errorf("argument %q is not of the form key=value", arg)
		}
		m.Set(key, value)
	}

	for _, key := range c.StringSlice("delete") {
		if !m.Delete(key) {
			fmt.Fprintf(os.Stderr, "warning: key %q not present\n", key)
		}
	}

	table := &output.Table{}
	table.SetHeaders("#", "KEY", "VALUE")
	i := 0
	for k, v := range m.Pairs() {
		table.AddRow(fmt.Sprintf("%d", i), k, v)
		i++
	}
	if err := table.Render(os.Stdout); err != nil {
		return err
	}

	kl := m.Keys()
	fmt.Fprintf(os.Stdout, "\nkeys (%d): %s\n", kl.Len, strings.Join(kl.Keys, ", "))

	var reversed []string
	for k := range m.RevIterKeys() {
		reversed = append(reversed, k)
	}
	fmt.Fprintf(os.Stdout, "reversed: %s\n", strings.Join(reversed, ", "))

	return nil
}
