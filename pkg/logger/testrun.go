package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewTestHandler discards output unless TESTLOG is set, in which case
// records go to stderr as text so `go test -v` shows them.
func NewTestHandler(level slog.Level) slog.Handler {
	var out io.Writer = io.Discard
	if os.Getenv("TESTLOG") != "" {
		out = os.Stderr
	}
	return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
}
