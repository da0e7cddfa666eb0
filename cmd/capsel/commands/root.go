// Package commands implements the CLI commands for capsel.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/capsel/cmd"
	"github.com/thoreinstein/capsel/internal/config"
	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/logging"
	"github.com/thoreinstein/capsel/pkg/platform"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag. Empty defers to the
// config file.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// sdkOverride holds the value of the --sdk flag.
var sdkOverride string

// loadedConfig is the configuration read by initConfig. It holds defaults
// when loading failed.
var loadedConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/capsel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sdkOverride, "sdk", "",
		"use this API level or release instead of detecting the host")

	rootCmd.Version = cmd.Info().Version
	rootCmd.SetVersionTemplate("capsel version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load(configFile)
	configLoadErr = err
	if err != nil {
		cfg = config.Default()
	}
	loadedConfig = cfg
}

var rootCmd = &cobra.Command{
	Use:   "capsel",
	Short: "Inspect host capability tiers and the variants selected for them",
	Long: `capsel probes the host's API level, maps it to a capability tier and
reports which variant of each capability a selector would build.

Tiers are cumulative: a host at Gingerbread (API 9) also satisfies Froyo,
Eclair and Legacy. Each capability kind has a fixed table of variants and
the highest-tier variant the host satisfies is chosen. Strict mode has no
variant below Gingerbread.

The host level comes from, in order: --sdk, sdk_int in the config file or
CAPSEL_SDK_INT, then the build property file (build_prop).`,
	Example: `  # Show the detected tier
  capsel probe

  # Pretend to be a Froyo host
  capsel select --sdk 8

  # Full decision table as YAML
  capsel table -o yaml

  See Also: capsel config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pass either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("CAPSEL_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format == "" {
		format = logging.Format(loadedConfig.LogFormat)
	}
	if format != logging.FormatText && format != logging.FormatJSON && format != "" {
		return errors.NewUserError(errors.Newf("invalid --log-format %q", logFormat), "Use text or json")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handlers := []slog.Handler{logging.NewFormatHandler(cmd.ErrOrStderr(), format, opts)}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports config load errors and validates --sdk.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// these must work with a broken config file
	switch cmd.Name() {
	case "help", "version", "gen-doc", configCmd.Name(), doctorCmd.Name():
		return nil
	}
	if cmd.HasParent() && cmd.Parent() == configCmd {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if sdkOverride != "" {
		if _, ok := platform.ParseLevel(sdkOverride); !ok {
			return errors.NewUserError(errors.Newf("invalid --sdk %q", sdkOverride),
				"Pass an API level such as 9 or a release such as 2.3.3")
		}
	}
	return nil
}

// versionSource returns where the host level is read from for this run.
func versionSource() platform.VersionSource {
	if sdkOverride != "" {
		return platform.StaticSource(sdkOverride)
	}
	return config.Source(loadedConfig)
}

// newSelector probes the host and returns a selector that logs to the
// command's logger.
func newSelector(cmd *cobra.Command) *platform.Selector {
	flags := platform.Probe(versionSource())
	logger := logging.FromContext(cmd.Context())
	logger.Debug("probed host", "flags", flags.String(), "detected", flags.Detected())
	return platform.NewSelector(flags, platform.WithLogger(logger))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
