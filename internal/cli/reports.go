package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/thoreinstein/capsel/pkg/platform"
)

// TierStatus is one row of a probe report.
type TierStatus struct {
	Tier      platform.Tier `json:"tier" yaml:"tier" toml:"tier"`
	Threshold int           `json:"threshold" yaml:"threshold" toml:"threshold"`
	Supported bool          `json:"supported" yaml:"supported" toml:"supported"`
}

// ProbeReport describes what the probe detected.
type ProbeReport struct {
	Detected bool          `json:"detected" yaml:"detected" toml:"detected"`
	Level    int           `json:"level" yaml:"level" toml:"level"`
	Tier     platform.Tier `json:"tier" yaml:"tier" toml:"tier"`
	Tiers    []TierStatus  `json:"tiers" yaml:"tiers" toml:"tiers"`
}

// NewProbeReport builds a ProbeReport from f.
func NewProbeReport(f platform.Flags) ProbeReport {
	r := ProbeReport{
		Detected: f.Detected(),
		Level:    f.Level(),
		Tier:     f.Tier(),
	}
	for _, t := range platform.Tiers() {
		r.Tiers = append(r.Tiers, TierStatus{Tier: t, Threshold: t.Threshold(), Supported: f.Supports(t)})
	}
	return r
}

// RenderText implements TextRenderer.
func (r ProbeReport) RenderText(w io.Writer) error {
	level := fmt.Sprintf("%d", r.Level)
	if !r.Detected {
		level = color.YellowString("undetected")
	}
	fmt.Fprintf(w, "Level: %s\n", level)
	fmt.Fprintf(w, "Tier:  %s\n\n", color.New(color.Bold).Sprint(r.Tier))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tAPI\tSUPPORTED")
	for _, t := range r.Tiers {
		fmt.Fprintf(tw, "%s\t%d+\t%s\n", t.Tier, t.Threshold, mark(t.Supported))
	}
	return tw.Flush()
}

// Selection is the variant chosen for one capability kind.
type Selection struct {
	Kind      platform.Kind `json:"kind" yaml:"kind" toml:"kind"`
	Supported bool          `json:"supported" yaml:"supported" toml:"supported"`
	Variant   string        `json:"variant,omitempty" yaml:"variant,omitempty" toml:"variant,omitempty"`
	Requires  string        `json:"requires,omitempty" yaml:"requires,omitempty" toml:"requires,omitempty"`
}

func resolve(s *platform.Selector, kinds []platform.Kind) []Selection {
	out := make([]Selection, 0, len(kinds))
	for _, kind := range kinds {
		sel := Selection{Kind: kind}
		if info, ok := s.Resolve(kind); ok {
			sel.Supported = true
			sel.Variant = info.Name
			sel.Requires = info.MinTier.String()
		}
		out = append(out, sel)
	}
	return out
}

// SelectionReport lists the variants a selector picks for a host.
type SelectionReport struct {
	Detected   bool          `json:"detected" yaml:"detected" toml:"detected"`
	Level      int           `json:"level" yaml:"level" toml:"level"`
	Tier       platform.Tier `json:"tier" yaml:"tier" toml:"tier"`
	Selections []Selection   `json:"selections" yaml:"selections" toml:"selections"`
}

// NewSelectionReport resolves kinds with s. All kinds are resolved when
// kinds is empty.
func NewSelectionReport(s *platform.Selector, kinds []platform.Kind) SelectionReport {
	if len(kinds) == 0 {
		kinds = platform.Kinds()
	}
	f := s.Flags()
	return SelectionReport{
		Detected:   f.Detected(),
		Level:      f.Level(),
		Tier:       f.Tier(),
		Selections: resolve(s, kinds),
	}
}

// RenderText implements TextRenderer.
func (r SelectionReport) RenderText(w io.Writer) error {
	host := "undetected"
	if r.Detected {
		host = fmt.Sprintf("api %d", r.Level)
	}
	fmt.Fprintf(w, "Host: %s (%s)\n\n", host, r.Tier)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tVARIANT\tREQUIRES")
	for _, s := range r.Selections {
		if !s.Supported {
			fmt.Fprintf(tw, "%s\t%s\t-\n", s.Kind, color.RedString("unsupported"))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Kind, s.Variant, s.Requires)
	}
	return tw.Flush()
}

// TableRow is the selection made at one tier's threshold.
type TableRow struct {
	Tier       platform.Tier `json:"tier" yaml:"tier" toml:"tier"`
	Level      int           `json:"level" yaml:"level" toml:"level"`
	Selections []Selection   `json:"selections" yaml:"selections" toml:"selections"`
}

// TableReport is the full tier by kind decision matrix.
type TableReport struct {
	Rows []TableRow `json:"rows" yaml:"rows" toml:"rows"`
}

// NewTableReport resolves every kind at every tier threshold.
func NewTableReport() TableReport {
	var r TableReport
	for _, t := range platform.Tiers() {
		s := platform.NewSelector(platform.FlagsFor(t.Threshold()))
		r.Rows = append(r.Rows, TableRow{
			Tier:       t,
			Level:      t.Threshold(),
			Selections: resolve(s, platform.Kinds()),
		})
	}
	return r
}

// RenderText implements TextRenderer.
func (r TableReport) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "TIER\tAPI")
	for _, kind := range platform.Kinds() {
		fmt.Fprintf(tw, "\t%s", kind)
	}
	fmt.Fprintln(tw)

	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%d", row.Tier, row.Level)
		for _, s := range row.Selections {
			name := s.Variant
			if !s.Supported {
				name = "-"
			}
			fmt.Fprintf(tw, "\t%s", name)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func mark(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
