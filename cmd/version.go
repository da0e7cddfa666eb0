// Package cmd contains build-time variables injected via ldflags.
package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags:
//
//	-X github.com/thoreinstein/capsel/cmd.Version=v1.2.3
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Info returns the build information. Builds without ldflags fall back to
// the module version and VCS revision recorded by the Go toolchain.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("capsel version %s\n  commit: %s\n  built:  %s\n  go:     %s\n",
		b.Version, b.Commit, b.Date, b.GoVersion)
}
