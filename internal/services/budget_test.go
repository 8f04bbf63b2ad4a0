package services

import (
	"context"
	"math"
	"testing"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

type fakeBudgetStore struct {
	budget   *models.Budget
	upserted []*models.Budget
}

func (f *fakeBudgetStore) Get(context.Context, string) (*models.Budget, bool, error) {
	return f.budget, f.budget != nil, nil
}

func (f *fakeBudgetStore) Upsert(_ context.Context, b *models.Budget) error {
	f.upserted = append(f.upserted, b)
	return nil
}

func TestBudgetGetAbsent(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{})
	resp, err := svc.Get(helpers.TestCtx(), "u1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if resp.Configured || resp.Budget != nil {
		t.Fatalf("expected unconfigured response, got %+v", resp)
	}
}

func TestBudgetSet(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store)

	b, err := svc.Set(helpers.TestCtx(), "u1", dto.SetBudgetRequest{WeeklyBudget: helpers.Ptr(1000.0)})
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if b.Period != models.PeriodWeek || b.UserID != "u1" {
		t.Fatalf("unexpected budget %+v", b)
	}
	if len(store.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(store.upserted))
	}
}

func TestBudgetSetValidation(t *testing.T) {
	cases := map[string]dto.SetBudgetRequest{
		"bad period":            {WeeklyBudget: helpers.Ptr(10.0), Period: "year"},
		"missing selected":      {MonthlyBudget: helpers.Ptr(10.0), Period: models.PeriodWeek},
		"zero selected":         {MonthlyBudget: helpers.Ptr(0.0), Period: models.PeriodMonth},
		"negative other figure": {WeeklyBudget: helpers.Ptr(10.0), MonthlyBudget: helpers.Ptr(-1.0)},
		"nan":                   {WeeklyBudget: helpers.Ptr(math.NaN())},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeBudgetStore{}
			_, err := NewBudgetService(store).Set(helpers.TestCtx(), "u1", req)
			if _, ok := err.(*errs.ValidationError); !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(store.upserted) != 0 {
				t.Fatal("nothing should be written on invalid input")
			}
		})
	}
}
