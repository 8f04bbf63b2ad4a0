package services

import (
	"context"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type budgetStore interface {
	Get(ctx context.Context, uid string) (*models.Budget, bool, error)
	Upsert(ctx context.Context, b *models.Budget) error
}

type budgetService struct {
	store budgetStore
}

func NewBudgetService(store budgetStore) *budgetService {
	return &budgetService{store: store}
}

func (s *budgetService) Get(ctx context.Context, uid string) (dto.BudgetResponse, error) {
	b, found, err := s.store.Get(ctx, uid)
	if err != nil {
		return dto.BudgetResponse{}, err
	}
	if !found {
		return dto.BudgetResponse{Configured: false}, nil
	}
	return dto.BudgetResponse{Configured: true, Budget: b}, nil
}

// Set upserts uid's budget. The figure for the selected period must be
// present and positive; the other one is optional.
func (s *budgetService) Set(ctx context.Context, uid string, req dto.SetBudgetRequest) (*models.Budget, error) {
	period, err := validatePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	for _, v := range []*float64{req.WeeklyBudget, req.MonthlyBudget} {
		if v == nil {
			continue
		}
		if err := aggregate.ValidateAmount(*v); err != nil {
			return nil, err
		}
	}

	selected := req.WeeklyBudget
	if period == models.PeriodMonth {
		selected = req.MonthlyBudget
	}
	if helpers.Value(selected) <= 0 {
		return nil, errs.NewValidationError(period + "ly budget must be greater than zero")
	}

	b := &models.Budget{
		UserID:        uid,
		WeeklyBudget:  req.WeeklyBudget,
		MonthlyBudget: req.MonthlyBudget,
		Period:        period,
	}
	if err := s.store.Upsert(ctx, b); err != nil {
		logger.FromContext(ctx).Error("failed to save budget", "error", err)
		return nil, err
	}
	return b, nil
}
