package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/capsel/internal/config"
	"github.com/thoreinstein/capsel/internal/editor"
	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/paths"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage capsel configuration",
	Long: `Manage capsel configuration stored in ~/.config/capsel/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  capsel config

  # Get a specific value
  capsel config get build_prop

  # Write a default config file
  capsel config init

See Also: capsel probe`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single effective configuration value by key. Values set in the
environment (CAPSEL_<KEY>) take precedence over the file.`,
	Example: `  capsel config get sdk_int

See Also: capsel config list`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all effective configuration values in YAML format.`,
	Example: `  capsel config list

See Also: capsel config get`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file holding the default values. The file is written to
--config when given, otherwise to ~/.config/capsel/config.yaml.`,
	Example: `  capsel config init
  capsel config init --force

See Also: capsel config path`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configTarget())
		return err
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in an editor",
	Long: `Open the config file in $CAPSEL_EDITOR, $EDITOR or $VISUAL, falling
back to nano or vi.`,
	Example: `  capsel config edit
  EDITOR="code --wait" capsel config edit

See Also: capsel config init`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// openEditor is replaced in tests.
var openEditor = editor.Open

// configTarget is the file config commands read and write.
func configTarget() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	if !slices.Contains(config.Keys(), key) {
		return errors.NewUserError(errors.Newf("unknown config key %q", args[0]),
			"Valid keys: "+strings.Join(config.Keys(), ", "))
	}

	out := cmd.OutOrStdout()
	if !viper.IsSet(key) || viper.GetString(key) == "" {
		_, err := fmt.Fprintln(out, "not set")
		return err
	}
	_, err := fmt.Fprintln(out, viper.GetString(key))
	return err
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	data, err := yaml.Marshal(loadedConfig)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFile
	if path == "" {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(errors.Newf("config file already exists at %s", path),
			"Pass --force to overwrite it")
	}

	if err := config.Write(path, config.Default()); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configTarget()
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(errors.Newf("no config file at %s", path),
			"Run: capsel config init")
	}

	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := openEditor(cmd.Context(), path, streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}
	return nil
}
