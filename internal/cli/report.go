package cli

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/capsel/internal/errors"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML output.
	FormatTOML Format = "toml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	if !slices.Contains(Formats(), f) {
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return "", errors.Newf("unknown output format %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return f, nil
}

// TextRenderer is implemented by reports that have a human-readable form.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// Reporter formats and writes reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes v to the output. Text output requires v to implement
// TextRenderer.
func (r *Reporter) Report(v any) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(v), "encoding JSON report")
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(encoder.Close(), "encoding YAML report")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(r.out).Encode(v), "encoding TOML report")
	default:
		tr, ok := v.(TextRenderer)
		if !ok {
			return errors.Newf("%T has no text form", v)
		}
		return tr.RenderText(r.out)
	}
}
