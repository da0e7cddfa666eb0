package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/logging"
	"github.com/thoreinstein/capsel/pkg/platform"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config file format this build cannot read.
	ErrUnsupportedVersion = errors.New("version must be 1")

	// ErrInvalidSDK indicates sdk_int is neither an API level nor a release.
	ErrInvalidSDK = errors.New("invalid sdk_int")

	// ErrInvalidLogFormat indicates an unknown log_format.
	ErrInvalidLogFormat = errors.New("invalid log_format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

var logFormats = []string{string(logging.FormatText), string(logging.FormatJSON)}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, ErrUnsupportedVersion)
	}

	if cfg.SDKInt != "" {
		if _, ok := platform.ParseLevel(cfg.SDKInt); !ok {
			errs = append(errs, &FieldError{Field: KeySDKInt, Value: cfg.SDKInt, Err: ErrInvalidSDK})
		}
	}

	if cfg.BuildProp != "" {
		if err := validatePath(cfg.BuildProp); err != nil {
			errs = append(errs, &FieldError{Field: KeyBuildProp, Value: cfg.BuildProp, Err: err})
		}
	}

	if cfg.LogFormat != "" && !slices.Contains(logFormats, cfg.LogFormat) {
		errs = append(errs, &FieldError{Field: KeyLogFormat, Value: cfg.LogFormat, Err: ErrInvalidLogFormat})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
