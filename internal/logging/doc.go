// Package logging provides structured logging for capsel using slog.
//
// Loggers write either TTY-friendly text (colourised when the writer is a
// terminal) or JSON. A [MultiHandler] fans records out to several handlers,
// which the CLI uses to mirror logs into a file.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("probed host", "level", 9)
//
// Library code takes its logger from a context with [FromContext], which
// falls back to a discarding logger so nothing is printed unless the caller
// asked for it. Tests use [ForTest] to route output through t.Log.
package logging
