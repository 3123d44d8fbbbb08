package cli

import (
	"io"
	"log/slog"
)

// newLogger creates the text logger used by all commands. Debug records
// are only emitted in verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
