package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

var fixedNow = time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// fakeLedger serves the read side from memory.
type fakeLedger struct {
	expenses []models.Expense
	payments []models.Payment
	required []models.RequiredExpense
	students []models.User
	budget   *models.Budget

	err     error
	windows []*dto.Window
}

func (f *fakeLedger) PersonalExpenses(_ context.Context, uid string, w *dto.Window) ([]models.Expense, error) {
	f.windows = append(f.windows, w)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Expense
	for _, e := range f.expenses {
		if e.UserID == uid && w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedger) RequiredExpenses(context.Context) ([]models.RequiredExpense, error) {
	return f.required, f.err
}

func (f *fakeLedger) Payments(_ context.Context, uid string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.StudentID == uid {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakeLedger) Budget(context.Context, string) (*models.Budget, bool, error) {
	return f.budget, f.budget != nil, f.err
}

func (f *fakeLedger) PaymentsForRequiredExpense(_ context.Context, id string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.RequiredExpenseID == id {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakeLedger) AllPayments(context.Context) ([]models.Payment, error) { return f.payments, f.err }
func (f *fakeLedger) AllExpenses(context.Context) ([]models.Expense, error) { return f.expenses, f.err }
func (f *fakeLedger) Students(context.Context) ([]models.User, error)       { return f.students, f.err }

type fakeUserStore struct {
	users       map[string]*models.User
	adminExists bool
	created     []*models.User
	updated     []*models.User
	deleted     []string
	createErr   error
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]*models.User{}}
	for i := range users {
		u := users[i]
		f.users[u.UID] = &u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, u)
	f.users[u.UID] = u
	return nil
}

func (f *fakeUserStore) Get(_ context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, errs.NewNotFoundError("user not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Update(_ context.Context, u *models.User) error {
	f.updated = append(f.updated, u)
	f.users[u.UID] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	delete(f.users, uid)
	return nil
}

func (f *fakeUserStore) ListByRole(_ context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) AdminExists(context.Context) (bool, error) { return f.adminExists, nil }
