package platform

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/thoreinstein/capsel/pkg/fileutil"
)

// Build property keys read by BuildPropSource.
const (
	PropSDK     = "ro.build.version.sdk"
	PropRelease = "ro.build.version.release"
)

// VersionSource reports the host's raw version identifier. The boolean is
// false when the source has nothing to report.
type VersionSource interface {
	SDKVersion() (string, bool)
}

// SourceFunc adapts a function to VersionSource.
type SourceFunc func() (string, bool)

// SDKVersion calls f.
func (f SourceFunc) SDKVersion() (string, bool) {
	return f()
}

// StaticSource always reports value. An empty value reports nothing.
func StaticSource(value string) VersionSource {
	return SourceFunc(func() (string, bool) {
		return value, value != ""
	})
}

// EnvSource reports the value of the named environment variable.
func EnvSource(name string) VersionSource {
	return SourceFunc(func() (string, bool) {
		v, ok := os.LookupEnv(name)
		return v, ok && v != ""
	})
}

// BuildPropSource reads a key=value build property file. It reports the
// SDK level when present and the release string otherwise. A missing or
// unreadable file reports nothing.
func BuildPropSource(path string) VersionSource {
	return SourceFunc(func() (string, bool) {
		props, err := readProps(path)
		if err != nil {
			return "", false
		}
		if v := props[PropSDK]; v != "" {
			return v, true
		}
		if v := props[PropRelease]; v != "" {
			return v, true
		}
		return "", false
	})
}

// FirstOf reports the value of the first source that has one.
func FirstOf(sources ...VersionSource) VersionSource {
	return SourceFunc(func() (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s.SDKVersion(); ok {
				return v, true
			}
		}
		return "", false
	})
}

// buildPropLimit bounds how much of a property file is read.
const buildPropLimit = 256 * 1024

func readProps(path string) (map[string]string, error) {
	data, err := fileutil.ReadFileWithLimit(path, buildPropLimit)
	if err != nil {
		return nil, err
	}

	props := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return props, sc.Err()
}
