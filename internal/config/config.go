// Package config provides configuration management for capsel using Viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/paths"
	"github.com/thoreinstein/capsel/pkg/fileutil"
	"github.com/thoreinstein/capsel/pkg/platform"
)

// EnvPrefix prefixes every environment override, e.g. CAPSEL_SDK_INT.
const EnvPrefix = "CAPSEL"

// Config keys.
const (
	KeyVersion   = "version"
	KeySDKInt    = "sdk_int"
	KeyBuildProp = "build_prop"
	KeyLogFormat = "log_format"
)

// Keys lists every configuration key in display order.
func Keys() []string {
	return []string{KeyVersion, KeySDKInt, KeyBuildProp, KeyLogFormat}
}

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`
	// SDKInt, when set, is used instead of detecting the host version.
	SDKInt    string `mapstructure:"sdk_int" yaml:"sdk_int"`
	BuildProp string `mapstructure:"build_prop" yaml:"build_prop"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:   1,
		BuildProp: paths.DefaultBuildProp,
		LogFormat: "text",
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Init discards any earlier Viper state, including a file set by Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Current directory first, then the user config directory.
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault(KeyVersion, d.Version)
	viper.SetDefault(KeySDKInt, d.SDKInt)
	viper.SetDefault(KeyBuildProp, d.BuildProp)
	viper.SetDefault(KeyLogFormat, d.LogFormat)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load; defaults apply.
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		err := errors.Wrapf(errors.ErrInvalidConfig, "%d problem(s)", len(errs))
		for _, e := range errs {
			err = errors.WithHint(err, e.Error())
		}
		return nil, err
	}

	return &cfg, nil
}

// Source returns the version source the probe should read: the sdk_int
// override first, then the build property file.
func Source(cfg *Config) platform.VersionSource {
	if cfg == nil {
		cfg = Default()
	}
	var sources []platform.VersionSource
	if cfg.SDKInt != "" {
		sources = append(sources, platform.StaticSource(cfg.SDKInt))
	}
	if cfg.BuildProp != "" {
		sources = append(sources, platform.BuildPropSource(cfg.BuildProp))
	}
	return platform.FirstOf(sources...)
}

// Write stores cfg as YAML at path, creating the parent directory. The
// file is replaced atomically.
func Write(path string, cfg *Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return errors.Wrapf(fileutil.AtomicWriteYAML(path, cfg, 0o600), "writing %s", path)
}
