package doctor

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCheck struct {
	mock.Mock
}

func (m *mockCheck) Name() string     { return m.Called().String(0) }
func (m *mockCheck) Category() string { return m.Called().String(0) }

func (m *mockCheck) Run() *CheckResult {
	r, _ := m.Called().Get(0).(*CheckResult)
	return r
}

func checkReturning(t *testing.T, result *CheckResult) *mockCheck {
	t.Helper()
	c := &mockCheck{}
	c.On("Run").Return(result).Once()
	t.Cleanup(func() { c.AssertExpectations(t) })
	return c
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner()
	fixed := time.Date(2011, time.February, 22, 9, 0, 0, 0, time.FixedZone("EST", -5*3600))
	r.now = func() time.Time { return fixed }

	r.AddCheck(checkReturning(t, &CheckResult{Name: "a", Status: SeverityPass}))
	r.AddCheck(checkReturning(t, &CheckResult{Name: "b", Status: SeverityInfo}))
	r.AddCheck(checkReturning(t, &CheckResult{Name: "c", Status: SeverityWarning}))
	r.AddCheck(checkReturning(t, &CheckResult{Name: "d", Status: SeverityError}))
	r.AddCheck(checkReturning(t, &CheckResult{Name: "e", Status: SeverityPass}))
	r.AddCheck(checkReturning(t, nil))

	report := r.Run()

	assert.Equal(t, fixed.UTC(), report.Timestamp)
	require.Len(t, report.Results, 5)
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, want, report.Results[i].Name, "results keep check order")
	}
	assert.Equal(t, Summary{Passed: 2, Info: 1, Warnings: 1, Errors: 1}, report.Summary)
	assert.True(t, report.HasErrors())
	assert.True(t, report.HasWarnings())
}

func TestRunner_Empty(t *testing.T) {
	report := NewRunner().Run()
	assert.Empty(t, report.Results)
	assert.False(t, report.HasErrors())
	assert.False(t, report.HasWarnings())
}

func TestSeverity_Text(t *testing.T) {
	b, err := json.Marshal(CheckResult{Name: "x", Status: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"status":"warning"`)

	var got CheckResult
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, SeverityWarning, got.Status)

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDoctorReport_WriteText(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	report := &DoctorReport{
		Results: []*CheckResult{
			{Name: "config-file", Category: "config", Status: SeverityPass, Message: "loaded"},
			{Name: "host-level", Category: "host", Status: SeverityWarning, Message: "not detected", FixHint: "set sdk_int"},
		},
		Summary: Summary{Passed: 1, Warnings: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, report.RenderText(&buf))
	out := buf.String()
	assert.NotContains(t, out, "config-file")
	assert.Contains(t, out, "⚠ [host] host-level: not detected\n  hint: set sdk_int\n")
	assert.True(t, strings.HasSuffix(out, "Summary: 1 passed, 0 info, 1 warnings, 0 errors\n"))

	buf.Reset()
	require.NoError(t, report.WriteText(&buf, true))
	assert.Contains(t, buf.String(), "✓ [config] config-file: loaded\n")
}
