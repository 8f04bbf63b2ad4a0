package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/expense-tracker/internal/config"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Firebase  *auth.Client
}

// Run builds the process-wide clients. Log is always set, even when an
// error is returned, so callers can report the failure.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = InitFirebase(ctx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}

	bs.Log.Info("bootstrap complete", "project", cfg.ProjectID, "timezone", cfg.Location.String())
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore client", "error", err)
		}
	}
}
