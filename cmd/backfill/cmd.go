// Command backfill repairs payment records whose denormalized title is
// missing, copying it from the referenced required expense.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GregMSThompson/expense-tracker/internal/bootstrap"
	"github.com/GregMSThompson/expense-tracker/internal/config"
	"github.com/GregMSThompson/expense-tracker/internal/services"
	"github.com/GregMSThompson/expense-tracker/internal/store"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	flag.Parse()

	cfg := config.New()
	ctx := context.Background()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	ctx = logger.ToContext(ctx, bs.Log.With("job", "fix-payment-titles"))

	svc := services.NewBackfillService(
		store.NewPaymentStore(bs.Firestore),
		store.NewRequiredExpenseStore(bs.Firestore),
	)
	res, err := svc.FixPaymentTitles(ctx, *dryRun)
	exitOnError("backfill failed", err, bs.Log)

	bs.Log.Info("backfill finished",
		"scanned", res.Scanned,
		"fixed", res.Fixed,
		"skipped", res.Skipped,
		"dry_run", res.DryRun,
	)
}
