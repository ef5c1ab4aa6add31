// Package logging builds the diagnostic logger for the CLI. User-facing
// command output is printed directly; this logger carries debug detail about
// remote calls on stderr when --verbose is set.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a colored console logger writing to w. With verbose false only
// warnings and errors pass; verbose true enables debug output.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
	return slog.New(handler)
}
