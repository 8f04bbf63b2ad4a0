package logger

import (
	"log/slog"
	"strings"
)

// HandlerFunc builds the sink for a given minimum level.
type HandlerFunc func(level slog.Level) slog.Handler

// New builds a logger from a LOGLEVEL style string. Unknown or empty
// levels mean info.
func New(level string, handler HandlerFunc) *slog.Logger {
	return slog.New(handler(ParseLevel(level)))
}

// ParseLevel is case and whitespace insensitive and accepts "warning"
// as an alias of "warn".
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
