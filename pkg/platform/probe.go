package platform

import (
	"strconv"
	"strings"
)

// Probe reads src once and derives the host's tier flags. A nil source, a
// missing value, or a value that is neither an API level nor a release
// string yields undetected flags, which select only Legacy variants.
//
// Call Probe once at startup and hand the result to NewSelector; the flags
// never change for the life of the process.
func Probe(src VersionSource) Flags {
	if src == nil {
		return Flags{}
	}
	raw, ok := src.SDKVersion()
	if !ok {
		return Flags{}
	}
	level, ok := ParseLevel(raw)
	if !ok {
		return Flags{}
	}
	return FlagsFor(level)
}

// ParseLevel interprets a version identifier. Plain integers are API
// levels; dotted strings are looked up as platform releases.
func ParseLevel(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	if !strings.Contains(raw, ".") {
		return 0, false
	}
	return ReleaseLevel(raw)
}
