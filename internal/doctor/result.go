// Package doctor provides diagnostic checks for capsel configuration and
// host detection.
package doctor

import "github.com/thoreinstein/capsel/internal/errors"

// Severity indicates the importance level of a check result.
type Severity int

const (
	// SeverityPass indicates the check passed without issues.
	SeverityPass Severity = iota

	// SeverityInfo indicates informational output, not a problem.
	SeverityInfo

	// SeverityWarning indicates a potential issue that doesn't prevent operation.
	SeverityWarning

	// SeverityError indicates a problem that prevents proper operation.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes s by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	for v := SeverityPass; v <= SeverityError; v++ {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}
	return errors.Newf("unknown severity %q", b)
}

// CheckResult represents the outcome of a single diagnostic check.
type CheckResult struct {
	// Name is the identifier for this check.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Category groups related checks (e.g., "config", "host").
	Category string `json:"category" yaml:"category" toml:"category"`

	// Status indicates the severity of the check result.
	Status Severity `json:"status" yaml:"status" toml:"status"`

	// Message describes the check outcome.
	Message string `json:"message" yaml:"message" toml:"message"`

	// Details contains additional context about the check result.
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`

	// FixHint provides guidance on how to resolve the issue.
	FixHint string `json:"fix_hint,omitempty" yaml:"fix_hint,omitempty" toml:"fix_hint,omitempty"`
}

// Summary aggregates counts of check results by severity.
type Summary struct {
	Passed   int `json:"passed" yaml:"passed" toml:"passed"`
	Info     int `json:"info" yaml:"info" toml:"info"`
	Warnings int `json:"warnings" yaml:"warnings" toml:"warnings"`
	Errors   int `json:"errors" yaml:"errors" toml:"errors"`
}
