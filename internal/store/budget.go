package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type budgetStore struct {
	client *firestore.Client
}

func NewBudgetStore(client *firestore.Client) *budgetStore {
	return &budgetStore{client: client}
}

func (s *budgetStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection(budgetsCollection).Doc(uid)
}

// Get reports found=false, not an error, when uid has no budget.
func (s *budgetStore) Get(ctx context.Context, uid string) (*models.Budget, bool, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, errs.NewDatabaseError("read", "failed to get budget", err)
	}
	var b models.Budget
	if err := snap.DataTo(&b); err != nil {
		return nil, false, errs.NewDatabaseError("read", "failed to parse budget data", err)
	}
	return &b, true, nil
}

// Upsert merges the set figures into uid's budget. Nil figures keep
// whatever is stored.
func (s *budgetStore) Upsert(ctx context.Context, b *models.Budget) error {
	b.UpdatedAt = time.Now()
	data := map[string]any{
		"userId":    b.UserID,
		"period":    b.Period,
		"updatedAt": b.UpdatedAt,
	}
	if b.WeeklyBudget != nil {
		data["weeklyBudget"] = *b.WeeklyBudget
	}
	if b.MonthlyBudget != nil {
		data["monthlyBudget"] = *b.MonthlyBudget
	}

	_, err := s.doc(b.UserID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to save budget", err)
	}
	return nil
}
