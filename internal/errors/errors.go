package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnsupported indicates no variant of a capability is compatible
	// with the detected host tier.
	ErrUnsupported = crdb.New("no compatible variant")

	// ErrUnknownKind indicates a capability kind name was not recognized.
	ErrUnknownKind = crdb.New("unknown capability kind")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// New returns an error with the given message and a stack trace.
func New(msg string) error { return crdb.New(msg) }

// Newf formats an error message and attaches a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with a message. It returns nil if err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// WithHint attaches a user-facing hint to err.
func WithHint(err error, hint string) error { return crdb.WithHint(err, hint) }

// FlattenHints returns all hints attached to err, joined by newlines.
func FlattenHints(err error) string { return crdb.FlattenHints(err) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return crdb.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: capsel config list",
	}
}

// ExitCode returns the process exit code for err: ExitSuccess for nil, the
// code of the outermost ExitError, or ExitSystem.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
