package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type summaryLedger interface {
	PersonalExpenses(ctx context.Context, uid string, w *dto.Window) ([]models.Expense, error)
	RequiredExpenses(ctx context.Context) ([]models.RequiredExpense, error)
	Payments(ctx context.Context, uid string) ([]models.Payment, error)
	Budget(ctx context.Context, uid string) (*models.Budget, bool, error)
}

type SummaryOptions struct {
	Location    *time.Location
	RecentLimit int
	UnpaidLimit int
}

type summaryService struct {
	ledger summaryLedger
	opts   SummaryOptions
	now    func() time.Time
}

func NewSummaryService(ledger summaryLedger, opts SummaryOptions) *summaryService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &summaryService{ledger: ledger, opts: opts, now: time.Now}
}

func (s *summaryService) today() time.Time {
	return s.now().In(s.opts.Location)
}

// Home builds the student home screen. All four reads run concurrently
// and the first failure fails the whole view.
func (s *summaryService) Home(ctx context.Context, uid string) (dto.HomeSummary, error) {
	log := logger.FromContext(ctx)

	var (
		expenses []models.Expense
		payments []models.Payment
		required []models.RequiredExpense
		budget   *models.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.ledger.PersonalExpenses(gctx, uid, nil)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.ledger.Payments(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		required, err = s.ledger.RequiredExpenses(gctx)
		return err
	})
	g.Go(func() error {
		b, found, err := s.ledger.Budget(gctx, uid)
		if found {
			budget = b
		}
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load home summary", "error", err)
		return dto.HomeSummary{}, err
	}

	ledger, err := aggregate.NewLedger(expenses, payments)
	if err != nil {
		return dto.HomeSummary{}, err
	}

	now := s.today()
	week := aggregate.WeekOf(now)
	month := aggregate.MonthOf(now)

	status, err := aggregate.BudgetStatus(budget, ledger.Total(&week), ledger.Total(&month))
	if err != nil {
		return dto.HomeSummary{}, err
	}

	return dto.HomeSummary{
		TotalSpent: ledger.Total(nil),
		Week:       week,
		Budget:     status,
		Recent:     ledger.Recent(s.opts.RecentLimit),
		Unpaid:     aggregate.Unpaid(required, payments, uid, s.opts.UnpaidLimit),
	}, nil
}

// Report breaks down spending for the current week or month.
func (s *summaryService) Report(ctx context.Context, uid, period string) (dto.Report, error) {
	if period == "" {
		period = models.PeriodWeek
	}
	window, ok := aggregate.PeriodWindow(period, s.today())
	if !ok {
		return dto.Report{}, errs.NewValidationError("period must be week or month")
	}

	var (
		expenses []models.Expense
		payments []models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.ledger.PersonalExpenses(gctx, uid, &window)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.ledger.Payments(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Error("failed to load report", "period", period, "error", err)
		return dto.Report{}, err
	}

	ledger, err := aggregate.NewLedger(expenses, payments)
	if err != nil {
		return dto.Report{}, err
	}

	return dto.Report{
		Period:     period,
		Window:     window,
		TotalSpent: ledger.Total(&window),
		Categories: ledger.Breakdown(&window, aggregate.PersonalPalette),
	}, nil
}
