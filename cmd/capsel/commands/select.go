package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/capsel/internal/cli"
	"github.com/thoreinstein/capsel/internal/cli/prompt"
	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/pkg/platform"
)

var (
	selectOutput      string
	selectInteractive bool
)

// pickKinds is swapped out in tests.
var pickKinds = prompt.SelectKindsDefault

func init() {
	addOutputFlag(selectCmd, &selectOutput)
	selectCmd.Flags().BoolVarP(&selectInteractive, "interactive", "i", false,
		"choose kinds with a fuzzy finder")
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select [kind...]",
	Short: "Show the variant selected for each capability kind",
	Long: `Report which variant of each capability kind the selector builds for
this host. With no arguments every kind is reported.

Kinds: location-finder, strict-mode, location-update-requester,
preference-saver. Strict mode is reported as unsupported below
Gingerbread.`,
	Example: `  # Every kind on the detected host
  capsel select

  # One kind, pretending to be Honeycomb
  capsel select strict-mode --sdk 11

  # Pick kinds interactively
  capsel select -i

See Also: capsel probe, capsel table`,
	ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	var kinds []platform.Kind
	for _, arg := range args {
		kind, err := platform.ParseKind(arg)
		if err != nil {
			return errors.NewUserError(err, "Valid kinds: "+strings.Join(kindNames(), ", "))
		}
		kinds = append(kinds, kind)
	}

	if selectInteractive {
		choices := kinds
		if len(choices) == 0 {
			choices = platform.Kinds()
		}
		picked, err := pickKinds(choices)
		if err != nil {
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return nil
			}
			return errors.NewUserError(err, "Enter numbers from the list, separated by commas")
		}
		kinds = picked
	}

	return report(cmd, selectOutput, cli.NewSelectionReport(newSelector(cmd), kinds))
}

func kindNames() []string {
	kinds := platform.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
