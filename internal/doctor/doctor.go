package doctor

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check (e.g., "config", "host").
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Runner executes diagnostic checks and aggregates their results.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a new diagnostic runner.
func NewRunner() *Runner {
	return &Runner{
		checks: make([]Check, 0),
		now:    time.Now,
	}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks in order and returns a report.
func (r *Runner) Run() *DoctorReport {
	report := &DoctorReport{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if result == nil {
			continue
		}
		report.Results = append(report.Results, result)

		switch result.Status {
		case SeverityPass:
			report.Summary.Passed++
		case SeverityInfo:
			report.Summary.Info++
		case SeverityWarning:
			report.Summary.Warnings++
		case SeverityError:
			report.Summary.Errors++
		}
	}

	return report
}

// DoctorReport aggregates all check results with timing and summary.
type DoctorReport struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp" toml:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results" yaml:"results" toml:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary" yaml:"summary" toml:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// RenderText writes errors and warnings followed by the summary.
func (r *DoctorReport) RenderText(w io.Writer) error {
	return r.WriteText(w, false)
}

// WriteText writes the report for humans. With showAll every result is
// listed, otherwise only errors and warnings.
func (r *DoctorReport) WriteText(w io.Writer, showAll bool) error {
	hasOutput := false
	for _, result := range r.Results {
		problem := result.Status == SeverityError || result.Status == SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		r.Summary.Passed, r.Summary.Info, r.Summary.Warnings, r.Summary.Errors)
	return err
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return color.GreenString("✓")
	case SeverityInfo:
		return color.CyanString("ℹ")
	case SeverityWarning:
		return color.YellowString("⚠")
	case SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
