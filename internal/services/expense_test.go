package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

type fakeExpenseStore struct {
	expenses map[string]*models.Expense
	created  []*models.Expense
	deleted  []string
	lastW    *dto.Window
	listed   bool
}

func newFakeExpenseStore(expenses ...models.Expense) *fakeExpenseStore {
	f := &fakeExpenseStore{expenses: map[string]*models.Expense{}}
	for i := range expenses {
		e := expenses[i]
		f.expenses[e.ExpenseID] = &e
	}
	return f
}

func (f *fakeExpenseStore) Create(_ context.Context, e *models.Expense) error {
	f.created = append(f.created, e)
	f.expenses[e.ExpenseID] = e
	return nil
}

func (f *fakeExpenseStore) Get(_ context.Context, id string) (*models.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, errs.NewNotFoundError("expense not found")
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseStore) Update(_ context.Context, e *models.Expense) error {
	f.expenses[e.ExpenseID] = e
	return nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeExpenseStore) ListByUser(_ context.Context, _ string, w *dto.Window) ([]models.Expense, error) {
	f.listed = true
	f.lastW = w
	return nil, nil
}

func newTestExpenseService(store *fakeExpenseStore, users *fakeUserStore) *expenseService {
	svc := NewExpenseService(store, users)
	svc.now = clock
	return svc
}

func TestExpenseCreateDefaults(t *testing.T) {
	store := newFakeExpenseStore()
	svc := newTestExpenseService(store, newFakeUserStore())

	e, err := svc.Create(helpers.TestCtx(), "u1", dto.CreateExpenseRequest{Title: "  Lunch ", Amount: helpers.Ptr(120.5)})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if e.Title != "Lunch" || e.Category != taxonomy.CategoryOther || e.UserID != "u1" {
		t.Fatalf("unexpected expense %+v", e)
	}
	if !e.Date.Equal(fixedNow) {
		t.Fatalf("expected date to default to now, got %v", e.Date)
	}
	if e.ExpenseID == "" || len(store.created) != 1 {
		t.Fatal("expected the expense to be stored with an id")
	}
}

func TestExpenseCreateValidation(t *testing.T) {
	cases := map[string]dto.CreateExpenseRequest{
		"missing title":    {Amount: helpers.Ptr(1.0)},
		"missing amount":   {Title: "x"},
		"negative amount":  {Title: "x", Amount: helpers.Ptr(-1.0)},
		"nan amount":       {Title: "x", Amount: helpers.Ptr(math.NaN())},
		"infinite amount":  {Title: "x", Amount: helpers.Ptr(math.Inf(1))},
		"unknown category": {Title: "x", Amount: helpers.Ptr(1.0), Category: "yachts"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			store := newFakeExpenseStore()
			svc := newTestExpenseService(store, newFakeUserStore())
			_, err := svc.Create(helpers.TestCtx(), "u1", req)
			if _, ok := err.(*errs.ValidationError); !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(store.created) != 0 {
				t.Fatal("nothing should be written on invalid input")
			}
		})
	}
}

func TestExpenseUpdateOwnership(t *testing.T) {
	store := newFakeExpenseStore(models.Expense{ExpenseID: "e1", UserID: "owner", Title: "Lunch", Amount: 10, Category: "food"})
	users := newFakeUserStore(
		models.User{UID: "other", Role: models.RoleStudent},
		models.User{UID: "admin", Role: models.RoleAdmin},
	)
	svc := newTestExpenseService(store, users)
	req := dto.UpdateExpenseRequest{Amount: helpers.Ptr(20.0)}

	if _, err := svc.Update(helpers.TestCtx(), "other", "e1", req); err == nil {
		t.Fatal("expected forbidden for another student")
	} else if _, ok := err.(*errs.ForbiddenError); !ok {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}

	e, err := svc.Update(helpers.TestCtx(), "admin", "e1", req)
	if err != nil {
		t.Fatalf("admin update returned error: %v", err)
	}
	if e.Amount != 20 || e.UserID != "owner" {
		t.Fatalf("unexpected updated expense %+v", e)
	}

	if _, err := svc.Update(helpers.TestCtx(), "owner", "e1", dto.UpdateExpenseRequest{Category: helpers.Ptr("nope")}); err == nil {
		t.Fatal("expected validation error for unknown category")
	}
}

func TestExpenseDeleteMissing(t *testing.T) {
	svc := newTestExpenseService(newFakeExpenseStore(), newFakeUserStore())
	err := svc.Delete(helpers.TestCtx(), "u1", "missing")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestExpenseListWindow(t *testing.T) {
	store := newFakeExpenseStore()
	svc := newTestExpenseService(store, newFakeUserStore())

	if _, err := svc.List(helpers.TestCtx(), "u1", dto.ExpenseQuery{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if store.lastW != nil {
		t.Fatal("expected no window without from/to")
	}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.List(helpers.TestCtx(), "u1", dto.ExpenseQuery{From: &from}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if store.lastW == nil || !store.lastW.Start.Equal(from) || !store.lastW.End.Equal(maxQueryTime) {
		t.Fatalf("unexpected window %+v", store.lastW)
	}

	to := from.AddDate(0, 0, -1)
	_, err := svc.List(helpers.TestCtx(), "u1", dto.ExpenseQuery{From: &from, To: &to})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError for inverted range, got %v", err)
	}
}
