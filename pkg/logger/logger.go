package logger

import (
	"log/slog"
	"os"
)

// New builds the application logger: slog text handler on stdout. Console
// diagnostics only, no file sink or telemetry exporter behind it.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
