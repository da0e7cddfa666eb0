package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/capsel/internal/cli"
)

var probeOutput string

func init() {
	addOutputFlag(probeCmd, &probeOutput)
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show the host API level and the tiers it satisfies",
	Long: `Probe the host once and print the detected API level, the highest tier
it satisfies and the flag for every tier.

A host whose level cannot be read is reported as undetected and satisfies
only the legacy tier.`,
	Example: `  # Detect from the build property file
  capsel probe

  # Interpret a release string
  capsel probe --sdk 2.3.3 -o json

See Also: capsel select, capsel table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report(cmd, probeOutput, cli.NewProbeReport(newSelector(cmd).Flags()))
	},
}
