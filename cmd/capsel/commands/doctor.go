package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/capsel/internal/cli"
	"github.com/thoreinstein/capsel/internal/doctor"
	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/pkg/platform"
)

var (
	doctorOutput string
	doctorAll    bool
)

func init() {
	addOutputFlag(doctorCmd, &doctorOutput)
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false,
		"show every check in text output, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and host detection",
	Long: `Run diagnostic checks on the capsel configuration and on how the host
level is detected.

Checks:
  config-file        the config file loads, validates and is not world-writable
  host-level         which source supplies the host level and whether it parses
  variant-selection  the variant every capability kind resolves to

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  capsel doctor
  capsel doctor --all
  capsel doctor -o json

See Also: capsel probe, capsel config`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("doctor found errors")

func runDoctor(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseFormat(doctorOutput)
	if err != nil {
		return errors.NewUserError(err, "Use -o text, json, yaml or toml")
	}

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(viper.ConfigFileUsed(), configLoadErr))

	var override platform.VersionSource
	if sdkOverride != "" {
		override = platform.StaticSource(sdkOverride)
	}
	var sdkInt platform.VersionSource
	if loadedConfig.SDKInt != "" {
		sdkInt = platform.StaticSource(loadedConfig.SDKInt)
	}
	runner.AddCheck(doctor.NewHostCheck(
		doctor.NamedSource{Name: "--sdk", Source: override},
		doctor.NamedSource{Name: "sdk_int", Source: sdkInt},
		doctor.NamedSource{Name: "build_prop " + loadedConfig.BuildProp, Source: platform.BuildPropSource(loadedConfig.BuildProp)},
	))
	runner.AddCheck(doctor.NewSelectionCheck(newSelector(cmd)))

	report := runner.Run()

	if format == cli.FormatText {
		err = report.WriteText(cmd.OutOrStdout(), doctorAll)
	} else {
		err = cli.NewReporter(cmd.OutOrStdout(), format).Report(report)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}
