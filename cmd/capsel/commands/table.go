package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/capsel/internal/cli"
)

var tableOutput string

func init() {
	addOutputFlag(tableCmd, &tableOutput)
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the variant chosen for every kind at every tier",
	Long: `Print the full decision table: for each tier, the variant of every
capability kind a host exactly at that tier's threshold receives. The
host's own level is not consulted.`,
	Example: `  capsel table
  capsel table -o toml

See Also: capsel select`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report(cmd, tableOutput, cli.NewTableReport())
	},
}
