package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/capsel/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"CAPSEL_DEBUG=1", "1", slog.LevelDebug},
		{"CAPSEL_DEBUG=true", "true", slog.LevelDebug},
		{"CAPSEL_DEBUG=2", "2", logging.LevelTrace},
		{"CAPSEL_DEBUG=0", "0", slog.LevelWarn},
		{"CAPSEL_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("CAPSEL_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Error("expected Trace level to be disabled when CAPSEL_DEBUG=1")
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	t.Setenv("CAPSEL_DEBUG", "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	quiet = true

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("expected Warn level to be disabled")
	}
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error when both quiet and verbose are set")
	}
}

func TestSetupLogging_InvalidFormat(t *testing.T) {
	isolate(t)
	t.Cleanup(resetFlags)

	logFormat = "xml"
	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "capsel.log")

	if _, _, err := execute(t, "select", "-v", "--sdk", "11", "--log-file", logPath); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	// -v is info; decisions are logged at debug and must not reach the file.
	if strings.Contains(string(data), "selected variant") {
		t.Errorf("debug record leaked into info-level log file: %s", data)
	}

	if _, _, err := execute(t, "select", "-vv", "--sdk", "11", "--log-file", logPath); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	data, err = os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"selected variant"`) {
		t.Errorf("expected JSON decision records in log file, got: %s", data)
	}
}
