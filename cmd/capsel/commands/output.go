package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/capsel/internal/cli"
	"github.com/thoreinstein/capsel/internal/errors"
)

func addOutputFlag(c *cobra.Command, p *string) {
	c.Flags().StringVarP(p, "output", "o", string(cli.FormatText),
		"output format: text, json, yaml, toml")
}

// report writes v to the command's stdout in the requested format.
func report(cmd *cobra.Command, format string, v any) error {
	f, err := cli.ParseFormat(format)
	if err != nil {
		return errors.NewUserError(err, "Use -o text, json, yaml or toml")
	}
	return cli.NewReporter(cmd.OutOrStdout(), f).Report(v)
}
