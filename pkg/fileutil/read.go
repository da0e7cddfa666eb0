package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/capsel/internal/errors"
)

// MaxFileSize is the default read limit (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.New("file exceeds read limit")

// ReadFileWithLimit reads at most limit bytes of path. A limit of zero or
// less means MaxFileSize. Larger files fail with ErrFileTooLarge.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = MaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large
	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes", path, info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
	}
	return data, nil
}
