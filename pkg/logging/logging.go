// Package logging configures structured logging with tint or JSON output.
//
// Usage:
//
//	logging.Configure("info", "text")  // colored output for terminals
//	logging.Configure("debug", "json") // one JSON object per line
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Configure installs the default logger from configuration values.
// format is "json" for machine-readable output; anything else is colored text.
func Configure(level, format string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stderr, ParseLevel(level), format))
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the handler used by Configure, writing to w.
func NewHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
