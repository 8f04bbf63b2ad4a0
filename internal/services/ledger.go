package services

import (
	"context"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type ledgerExpenseStore interface {
	ListByUser(ctx context.Context, uid string, w *dto.Window) ([]models.Expense, error)
	ListAll(ctx context.Context) ([]models.Expense, error)
}

type ledgerPaymentStore interface {
	ListByStudent(ctx context.Context, uid string) ([]models.Payment, error)
	ListByRequiredExpense(ctx context.Context, requiredExpenseID string) ([]models.Payment, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
}

type ledgerRequiredStore interface {
	List(ctx context.Context) ([]models.RequiredExpense, error)
}

type ledgerBudgetStore interface {
	Get(ctx context.Context, uid string) (*models.Budget, bool, error)
}

type ledgerUserStore interface {
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// ledgerReader is the read side shared by the summary, required expense
// and admin services. It never caches or retries.
type ledgerReader struct {
	expenses ledgerExpenseStore
	payments ledgerPaymentStore
	required ledgerRequiredStore
	budgets  ledgerBudgetStore
	users    ledgerUserStore
}

func NewLedgerReader(expenses ledgerExpenseStore, payments ledgerPaymentStore, required ledgerRequiredStore, budgets ledgerBudgetStore, users ledgerUserStore) *ledgerReader {
	return &ledgerReader{
		expenses: expenses,
		payments: payments,
		required: required,
		budgets:  budgets,
		users:    users,
	}
}

// PersonalExpenses returns uid's expenses newest first, limited to w
// when it is non-nil.
func (r *ledgerReader) PersonalExpenses(ctx context.Context, uid string, w *dto.Window) ([]models.Expense, error) {
	return r.expenses.ListByUser(ctx, uid, w)
}

func (r *ledgerReader) RequiredExpenses(ctx context.Context) ([]models.RequiredExpense, error) {
	return r.required.List(ctx)
}

func (r *ledgerReader) Payments(ctx context.Context, uid string) ([]models.Payment, error) {
	return r.payments.ListByStudent(ctx, uid)
}

func (r *ledgerReader) Budget(ctx context.Context, uid string) (*models.Budget, bool, error) {
	return r.budgets.Get(ctx, uid)
}

func (r *ledgerReader) PaymentsForRequiredExpense(ctx context.Context, requiredExpenseID string) ([]models.Payment, error) {
	return r.payments.ListByRequiredExpense(ctx, requiredExpenseID)
}

func (r *ledgerReader) AllPayments(ctx context.Context) ([]models.Payment, error) {
	return r.payments.ListAll(ctx)
}

func (r *ledgerReader) AllExpenses(ctx context.Context) ([]models.Expense, error) {
	return r.expenses.ListAll(ctx)
}

func (r *ledgerReader) Students(ctx context.Context) ([]models.User, error) {
	return r.users.ListByRole(ctx, models.RoleStudent)
}
