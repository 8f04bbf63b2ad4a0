package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/expense-tracker/internal/bootstrap"
	"github.com/GregMSThompson/expense-tracker/internal/config"
	"github.com/GregMSThompson/expense-tracker/internal/handlers"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/response"
	"github.com/GregMSThompson/expense-tracker/internal/router"
	"github.com/GregMSThompson/expense-tracker/internal/services"
	"github.com/GregMSThompson/expense-tracker/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(context.Background(), cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	estore := store.NewExpenseStore(bs.Firestore)
	rstore := store.NewRequiredExpenseStore(bs.Firestore)
	pstore := store.NewPaymentStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	refstore := store.NewReferenceStore(bs.Firestore)

	// services
	ledger := services.NewLedgerReader(estore, pstore, rstore, bstore, ustore)
	userv := services.NewUserService(ustore)
	exserv := services.NewExpenseService(estore, ustore)
	bgserv := services.NewBudgetService(bstore)
	smserv := services.NewSummaryService(ledger, services.SummaryOptions{
		Location:    cfg.Location,
		RecentLimit: cfg.RecentLimit,
		UnpaidLimit: cfg.UnpaidLimit,
	})
	rqserv := services.NewRequiredExpenseService(rstore, pstore, ledger, ustore)
	rfserv := services.NewReferenceService(refstore)
	adserv := services.NewAdminService(ledger, refstore, cfg.Location)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.UserSvc = userv
	deps.ExpenseSvc = exserv
	deps.BudgetSvc = bgserv
	deps.SummarySvc = smserv
	deps.RequiredExpenseSvc = rqserv
	deps.ReferenceSvc = rfserv
	deps.AdminSvc = adserv

	// middleware
	authMw := middleware.NewMiddleware(bs.Firebase)
	roleMw := middleware.NewRoleMiddleware(ustore, rh)

	// router
	r := router.NewRouter(deps, router.Middlewares{
		Auth:  authMw.FirebaseAuth,
		Admin: roleMw.RequireAdmin,
	})
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
