// Package fileutil provides bounded reads and atomic writes.
package fileutil

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/capsel/internal/errors"
)

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// This ensures interrupted writes leave the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	// Same directory, so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".capsel-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// AtomicWriteYAML writes v as YAML to path atomically with the given
// permissions.
func AtomicWriteYAML(path string, v any, perm os.FileMode) (err error) {
	// yaml.Marshal panics on unmarshalable types
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return AtomicWriteFile(path, data, perm)
}
