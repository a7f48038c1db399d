// Package logging configures the slog logger used for diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a logger writing to w. When jsonOutput is true it uses a
// JSONHandler, so diagnostics stay machine readable alongside JSON or YAML
// summaries; otherwise a TextHandler for human readability.
func New(w io.Writer, jsonOutput bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init creates a logger with New and sets it as the slog default.
func Init(w io.Writer, jsonOutput bool, level slog.Level) *slog.Logger {
	logger := New(w, jsonOutput, level)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
