// Package config provides configuration management for the capsel CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/capsel/config.yaml
// (CAPSEL_CONFIG_DIR overrides the directory). A config.yaml in the current
// directory takes precedence:
//
//	version: 1
//	sdk_int: ""                    # optional; skips detection
//	build_prop: /system/build.prop
//	log_format: text               # text or json
//
// Every key can also be set from the environment with the CAPSEL_ prefix,
// e.g. CAPSEL_SDK_INT=9.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	flags := platform.Probe(config.Source(cfg))
//
// Load validates what it reads. Problems are reported together as hints on
// an error wrapping errors.ErrInvalidConfig; call [Validate] directly to get
// them as a slice.
package config
