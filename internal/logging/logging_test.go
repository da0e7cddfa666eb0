package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("selected variant", "kind", "strict-mode")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output: %s", buf.String())
	assert.Equal(t, "selected variant", parsed["msg"])
	assert.Equal(t, "INFO", parsed["level"])
	assert.Equal(t, "strict-mode", parsed["kind"])
}

func TestNew_TextFormat(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: Format("unknown"), Output: &buf})

	logger.Info("probed host", "level", 9)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "probed host")
	assert.Contains(t, out, "level=9")
	assert.Contains(t, out, time.Now().Format(time.Kitchen))
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel slog.Level
		logLevel    slog.Level
		want        bool
	}{
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"debug at info", slog.LevelInfo, slog.LevelDebug, false},
		{"error at warn", slog.LevelWarn, slog.LevelError, true},
		{"trace at debug", slog.LevelDebug, LevelTrace, false},
		{"trace at trace", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.configLevel, Format: FormatText, Output: &buf})

			logger.Log(context.Background(), tt.logLevel, "message")

			assert.Equal(t, tt.want, buf.Len() > 0, "output: %q", buf.String())
		})
	}
}

func TestHandler_TraceLabel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(context.Background(), LevelTrace, "skipped row")

	assert.Contains(t, buf.String(), "TRACE skipped row")
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("component", "selector").WithGroup("variant")

	logger.Info("chosen", "name", "honeycomb", slog.Group("tier", "min", 11))

	out := buf.String()
	assert.Contains(t, out, "component=selector")
	assert.Contains(t, out, "variant.name=honeycomb")
	assert.Contains(t, out, "variant.tier.min=11")
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	require.NoError(t, h.Handle(t.Context(), r))

	assert.True(t, strings.HasPrefix(buf.String(), "INFO"), "got %q", buf.String())
}

func TestMultiHandler(t *testing.T) {
	var text, js bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run", 1)

	logger.Debug("only json")
	logger.Warn("both")

	assert.NotContains(t, text.String(), "only json")
	assert.Contains(t, text.String(), "both")
	assert.Contains(t, js.String(), "only json")
	assert.Contains(t, js.String(), `"run":1`)
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, h.Enabled(t.Context(), LevelTrace))
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))

	fallback := FromContext(t.Context())
	require.NotNil(t, fallback)
	fallback.Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"NO_COLOR prevents color", map[string]string{"NO_COLOR": "1"}, true, false},
		{"TERM=dumb prevents color", map[string]string{"TERM": "dumb"}, true, false},
		{"non-TTY prevents color", nil, false, false},
		{"TTY allows color", map[string]string{"TERM": "xterm"}, true, true},
		{"CLICOLOR_FORCE wins", map[string]string{"CLICOLOR_FORCE": "1", "NO_COLOR": "1"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CLICOLOR_FORCE", "")
			t.Setenv("TERM", "")
			unsetForTest(t, "NO_COLOR")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tt.want, supportsColor(tt.isTTY))
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	logger.Log(t.Context(), LevelTrace, "visible with -v")
}

// unsetForTest removes key for the duration of the test. The preceding
// t.Setenv registers the restore.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}
