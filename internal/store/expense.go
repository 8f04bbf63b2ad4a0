package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type expenseStore struct {
	client *firestore.Client
}

func NewExpenseStore(client *firestore.Client) *expenseStore {
	return &expenseStore{client: client}
}

func (s *expenseStore) collection() *firestore.CollectionRef {
	return s.client.Collection(expensesCollection)
}

func (s *expenseStore) Create(ctx context.Context, e *models.Expense) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	_, err := s.collection().Doc(e.ExpenseID).Set(ctx, e)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create expense", err)
	}
	return nil
}

func (s *expenseStore) Get(ctx context.Context, expenseID string) (*models.Expense, error) {
	snap, err := s.collection().Doc(expenseID).Get(ctx)
	return readOne[models.Expense](snap, err, "expense")
}

func (s *expenseStore) Update(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now()
	_, err := s.collection().Doc(e.ExpenseID).Set(ctx, e)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update expense", err)
	}
	return nil
}

func (s *expenseStore) Delete(ctx context.Context, expenseID string) error {
	_, err := s.collection().Doc(expenseID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete expense", err)
	}
	return nil
}

// ListByUser returns uid's expenses newest first. A non-nil window is
// applied in the query and needs the userId+date composite index.
func (s *expenseStore) ListByUser(ctx context.Context, uid string, w *dto.Window) ([]models.Expense, error) {
	q := s.collection().Where("userId", "==", uid)
	if w != nil {
		q = q.Where("date", ">=", w.Start).Where("date", "<=", w.End)
	}
	iter := q.OrderBy("date", firestore.Desc).Documents(ctx)
	return readAll[models.Expense](iter, "expenses")
}

func (s *expenseStore) ListAll(ctx context.Context) ([]models.Expense, error) {
	iter := s.collection().Documents(ctx)
	return readAll[models.Expense](iter, "expenses")
}
