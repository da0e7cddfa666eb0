// Package paths resolves the filesystem locations capsel reads from.
//
// Configuration follows the XDG base directory layout via
// github.com/adrg/xdg, so the default config file on Linux is
// ~/.config/capsel/config.yaml. CAPSEL_CONFIG_DIR overrides the directory.
package paths
