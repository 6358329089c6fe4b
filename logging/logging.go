// Package logging configures colored structured logging with tint.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: warn)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging to stderr at the level given by the LOG_LEVEL env var.
func Setup() {
	SetupWithLevel(os.Stderr, LevelFromString(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configures colored logging to the given writer at the given level.
func SetupWithLevel(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// LevelFromString maps a LOG_LEVEL value onto a slog level.
// Results are printed to stdout, so anything unrecognized stays quiet at warn.
func LevelFromString(value string) slog.Level {
	switch strings.ToLower(value) {
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
