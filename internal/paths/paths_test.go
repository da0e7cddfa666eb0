package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)

		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
		if got, want := ConfigFile(), filepath.Join(dir, "config.yaml"); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")

		if got, want := ConfigDir(), filepath.Join(ConfigHome(), AppName); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("second EnsureDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}
