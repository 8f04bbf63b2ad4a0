package helpers

import (
	"context"
	"log/slog"
	"time"

	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

// TestCtx returns a context carrying a test logger.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}

// Date builds a UTC timestamp at midnight, handy for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
