// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/capsel/internal/errors"
)

// Streams are the terminal streams handed to the editor.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the user's editor on path and waits for it to exit.
func Open(ctx context.Context, path string, s Streams) error {
	argv := Command()
	if len(argv) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	return errors.Wrapf(cmd.Run(), "running editor %s", argv[0])
}

// Command returns the editor command line. Fallback chain:
// $CAPSEL_EDITOR, $EDITOR, $VISUAL, nano, vi. Values may carry arguments,
// e.g. "code --wait".
func Command() []string {
	for _, env := range []string{"CAPSEL_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	// nano is easier for beginners
	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}

	// vi is available on all Unix systems
	return []string{"vi"}
}
