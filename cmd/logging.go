package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// InitLogger sets the default logger, a text logger writing to w at the
// global log level.
func InitLogger(w io.Writer) {
	var level slog.Level
	switch strings.ToLower(*logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
		slog.Warn("invalid log level, defaulting to warn", "level", *logLevel)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
