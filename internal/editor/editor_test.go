package editor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func clearEditorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CAPSEL_EDITOR", "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
}

func TestCommand_Precedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"capsel editor wins", map[string]string{"CAPSEL_EDITOR": "hx", "EDITOR": "nvim", "VISUAL": "code"}, "hx"},
		{"editor", map[string]string{"EDITOR": "nvim", "VISUAL": "code"}, "nvim"},
		{"visual", map[string]string{"VISUAL": "code --wait"}, "code --wait"},
		{"blank treated as unset", map[string]string{"EDITOR": "   ", "VISUAL": "vscode"}, "vscode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEditorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := strings.Join(Command(), " ")
			if got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_Fallback(t *testing.T) {
	clearEditorEnv(t)

	got := Command()
	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Command() = %v, want [%s]", got, want)
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	script := "#!/bin/sh\necho \"$@\"\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	clearEditorEnv(t)
	t.Setenv("EDITOR", mockEditor+" --wait")

	target := filepath.Join(tmpDir, "config.yaml")
	var out bytes.Buffer
	if err := Open(context.Background(), target, Streams{Out: &out, Err: &out}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "--wait "+target {
		t.Errorf("editor args = %q, want %q", got, "--wait "+target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	clearEditorEnv(t)
	t.Setenv("EDITOR", "non-existent-binary-12345")

	err := Open(context.Background(), "config.yaml", Streams{})
	if err == nil {
		t.Fatal("expected error for non-existent editor, got nil")
	}
	if !strings.Contains(err.Error(), "running editor non-existent-binary-12345") {
		t.Errorf("unexpected error: %v", err)
	}
}
