package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-application directory under the XDG roots.
const AppName = "capsel"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "CAPSEL_CONFIG_DIR"

// DefaultBuildProp is where Android-style hosts publish their build
// properties, including the API level.
const DefaultBuildProp = "/system/build.prop"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the capsel configuration directory, honouring
// CAPSEL_CONFIG_DIR.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
