package doctor

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/pkg/platform"
)

// ConfigCheck reports whether the config file loaded and is safe.
type ConfigCheck struct {
	path    string
	loadErr error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the file at path. path is empty when
// defaults are in use; loadErr is the error config.Load returned.
func NewConfigCheck(path string, loadErr error) *ConfigCheck {
	return &ConfigCheck{path: path, loadErr: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the config diagnostic check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	switch {
	case errors.Is(c.loadErr, errors.ErrNotFound):
		result.Status = SeverityError
		result.Message = "config file not found"
		result.FixHint = "Run: capsel config init"
		return result
	case errors.Is(c.loadErr, errors.ErrInvalidConfig):
		result.Status = SeverityError
		result.Message = "config file is invalid"
		result.Details = map[string]any{"problems": strings.Split(errors.FlattenHints(c.loadErr), "\n")}
		result.FixHint = "Run: capsel config list"
		return result
	case c.loadErr != nil:
		result.Status = SeverityError
		result.Message = c.loadErr.Error()
		return result
	case c.path == "":
		result.Status = SeverityInfo
		result.Message = "no config file, using defaults"
		return result
	}

	result.Details = map[string]any{"path": c.path}

	info, err := os.Stat(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config file: %v", err)
		return result
	}

	// Unix permissions don't apply on Windows
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		result.Status = SeverityWarning
		result.Message = "config file is world-writable"
		result.FixHint = "chmod 600 " + c.path
		return result
	}

	result.Status = SeverityPass
	result.Message = "loaded " + c.path
	return result
}

// NamedSource is a version source labelled for reporting.
type NamedSource struct {
	Name   string
	Source platform.VersionSource
}

// HostCheck reports which source supplies the host level and whether it
// parses.
type HostCheck struct {
	sources []NamedSource
}

var _ Check = (*HostCheck)(nil)

// NewHostCheck creates a check over sources in probe order.
func NewHostCheck(sources ...NamedSource) *HostCheck {
	return &HostCheck{sources: sources}
}

// Name returns the unique identifier for this check.
func (c *HostCheck) Name() string { return "host-level" }

// Category returns the grouping for this check.
func (c *HostCheck) Category() string { return "host" }

// Run executes the host detection check. Like the probe, it stops at the
// first source that reports a value.
func (c *HostCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	for _, s := range c.sources {
		if s.Source == nil {
			continue
		}
		raw, ok := s.Source.SDKVersion()
		if !ok {
			continue
		}

		level, ok := platform.ParseLevel(raw)
		if !ok {
			result.Status = SeverityError
			result.Message = fmt.Sprintf("%s reports %q, which is not an API level or release", s.Name, raw)
			result.FixHint = "Use an API level such as 9 or a release such as 2.3.3"
			result.Details = map[string]any{"source": s.Name, "raw": raw}
			return result
		}

		flags := platform.FlagsFor(level)
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%s from %s", flags, s.Name)
		result.Details = map[string]any{"source": s.Name, "raw": raw, "level": level, "tier": flags.Tier().String()}
		return result
	}

	result.Status = SeverityWarning
	result.Message = "host level not detected; only legacy variants will be selected"
	result.FixHint = "Set sdk_int or point build_prop at the host's build properties"
	return result
}

// SelectionCheck reports the variant each kind resolves to.
type SelectionCheck struct {
	selector *platform.Selector
}

var _ Check = (*SelectionCheck)(nil)

// NewSelectionCheck creates a check that resolves every kind with s.
func NewSelectionCheck(s *platform.Selector) *SelectionCheck {
	return &SelectionCheck{selector: s}
}

// Name returns the unique identifier for this check.
func (c *SelectionCheck) Name() string { return "variant-selection" }

// Category returns the grouping for this check.
func (c *SelectionCheck) Category() string { return "selection" }

// Run resolves every kind.
func (c *SelectionCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  map[string]any{},
	}

	var missing []string
	for _, kind := range platform.Kinds() {
		info, ok := c.selector.Resolve(kind)
		if !ok {
			missing = append(missing, string(kind))
			result.Details[string(kind)] = "unsupported"
			continue
		}
		result.Details[string(kind)] = info.Name
	}

	switch {
	case len(missing) == 0:
		result.Message = fmt.Sprintf("all %d kinds resolved", len(platform.Kinds()))
	case len(missing) == 1 && missing[0] == string(platform.KindStrictMode):
		result.Status = SeverityInfo
		result.Message = "strict mode is unavailable on this host"
	default:
		result.Status = SeverityError
		result.Message = "no variant for " + strings.Join(missing, ", ")
	}
	return result
}
