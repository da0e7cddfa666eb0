// Package errors provides error handling conventions for capsel.
//
// It wraps github.com/cockroachdb/errors so every package creates, wraps and
// inspects errors the same way, defines sentinel errors for the few failure
// conditions capsel has, and provides an ExitError type for CLI exit codes.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrUnsupported) {
//	    // no variant fits this host
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrUnknownKind, "Run: capsel select --help")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
