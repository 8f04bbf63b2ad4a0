package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type requiredExpenseStore struct {
	client *firestore.Client
}

func NewRequiredExpenseStore(client *firestore.Client) *requiredExpenseStore {
	return &requiredExpenseStore{client: client}
}

func (s *requiredExpenseStore) collection() *firestore.CollectionRef {
	return s.client.Collection(requiredExpensesCollection)
}

func (s *requiredExpenseStore) Create(ctx context.Context, r *models.RequiredExpense) error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	_, err := s.collection().Doc(r.RequiredExpenseID).Set(ctx, r)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create required expense", err)
	}
	return nil
}

func (s *requiredExpenseStore) Get(ctx context.Context, id string) (*models.RequiredExpense, error) {
	snap, err := s.collection().Doc(id).Get(ctx)
	return readOne[models.RequiredExpense](snap, err, "required expense")
}

func (s *requiredExpenseStore) Update(ctx context.Context, r *models.RequiredExpense) error {
	r.UpdatedAt = time.Now()
	_, err := s.collection().Doc(r.RequiredExpenseID).Set(ctx, r)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update required expense", err)
	}
	return nil
}

func (s *requiredExpenseStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete required expense", err)
	}
	return nil
}

// List returns every required expense, newest first.
func (s *requiredExpenseStore) List(ctx context.Context) ([]models.RequiredExpense, error) {
	iter := s.collection().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return readAll[models.RequiredExpense](iter, "required expenses")
}
