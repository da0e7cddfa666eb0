package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/capsel/pkg/platform"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: text, json, yaml, toml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_ProbeFormats(t *testing.T) {
	report := NewProbeReport(platform.FlagsFor(9))

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, FormatJSON).Report(report))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "gingerbread", got["tier"])
		assert.InDelta(t, 9, got["level"], 0)
		assert.Len(t, got["tiers"], len(platform.Tiers()))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, FormatYAML).Report(report))

		var got ProbeReport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report, got)
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, FormatTOML).Report(report))
		assert.Contains(t, buf.String(), "[[tiers]]")

		var got ProbeReport
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report, got)
	})
}

func TestReporter_TextRequiresRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewReporter(&buf, FormatText).Report(struct{}{})
	assert.ErrorContains(t, err, "has no text form")
}

func TestProbeReport_Text(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(NewProbeReport(platform.FlagsFor(8))))
	out := buf.String()

	assert.Contains(t, out, "Level: 8\n")
	assert.Contains(t, out, "Tier:  froyo\n")
	assert.Regexp(t, `froyo\s+8\+\s+yes`, out)
	assert.Regexp(t, `gingerbread\s+9\+\s+no`, out)

	buf.Reset()
	require.NoError(t, NewProbeReport(platform.Flags{}).RenderText(&buf))
	assert.Contains(t, buf.String(), "Level: undetected")
}

func TestSelectionReport(t *testing.T) {
	noColor(t)

	s := platform.NewSelector(platform.FlagsFor(8))
	report := NewSelectionReport(s, nil)
	require.Len(t, report.Selections, len(platform.Kinds()))

	byKind := map[platform.Kind]Selection{}
	for _, sel := range report.Selections {
		byKind[sel.Kind] = sel
	}
	assert.False(t, byKind[platform.KindStrictMode].Supported)
	assert.Equal(t, "froyo", byKind[platform.KindPreferenceSaver].Variant)
	assert.Equal(t, "froyo", byKind[platform.KindPreferenceSaver].Requires)
	assert.Equal(t, "legacy", byKind[platform.KindLocationFinder].Variant)

	var buf bytes.Buffer
	require.NoError(t, report.RenderText(&buf))
	assert.Contains(t, buf.String(), "Host: api 8 (froyo)")
	assert.Regexp(t, `strict-mode\s+unsupported`, buf.String())

	only := NewSelectionReport(s, []platform.Kind{platform.KindStrictMode})
	require.Len(t, only.Selections, 1)

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(only))
	assert.NotContains(t, buf.String(), `"variant"`)
}

func TestTableReport(t *testing.T) {
	noColor(t)

	report := NewTableReport()
	require.Len(t, report.Rows, len(platform.Tiers()))

	for _, row := range report.Rows {
		s := platform.NewSelector(platform.FlagsFor(row.Level))
		for _, sel := range row.Selections {
			info, ok := s.Resolve(sel.Kind)
			assert.Equal(t, ok, sel.Supported)
			assert.Equal(t, info.Name, sel.Variant)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, report.RenderText(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(platform.Tiers())+1)
	assert.Regexp(t, `^legacy\s+0\s+legacy\s+-\s+froyo\s+legacy$`, lines[1])
	assert.Regexp(t, `^honeycomb\s+11\s+gingerbread\s+honeycomb\s+gingerbread\s+gingerbread$`, lines[5])

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatTOML).Report(report))
	assert.Contains(t, buf.String(), "[[rows.selections]]")
}
