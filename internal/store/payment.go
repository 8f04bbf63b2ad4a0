package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type paymentStore struct {
	client *firestore.Client
}

func NewPaymentStore(client *firestore.Client) *paymentStore {
	return &paymentStore{client: client}
}

func (s *paymentStore) collection() *firestore.CollectionRef {
	return s.client.Collection(paymentsCollection)
}

// Create inserts unconditionally; two payments for the same student and
// required expense are both kept.
func (s *paymentStore) Create(ctx context.Context, p *models.Payment) error {
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	_, err := s.collection().Doc(p.PaymentID).Create(ctx, p)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to record payment", err)
	}
	return nil
}

func (s *paymentStore) ListByStudent(ctx context.Context, uid string) ([]models.Payment, error) {
	iter := s.collection().Where("studentId", "==", uid).Documents(ctx)
	return readAll[models.Payment](iter, "payments")
}

func (s *paymentStore) ListByRequiredExpense(ctx context.Context, requiredExpenseID string) ([]models.Payment, error) {
	iter := s.collection().Where("expenseId", "==", requiredExpenseID).Documents(ctx)
	return readAll[models.Payment](iter, "payments")
}

func (s *paymentStore) ListAll(ctx context.Context) ([]models.Payment, error) {
	iter := s.collection().Documents(ctx)
	return readAll[models.Payment](iter, "payments")
}

func (s *paymentStore) UpdateTitle(ctx context.Context, paymentID, title string) error {
	_, err := s.collection().Doc(paymentID).Update(ctx, []firestore.Update{
		{Path: "expenseTitle", Value: title},
	})
	if err != nil {
		if isNotFound(err) {
			return errs.NewNotFoundError("payment not found")
		}
		return errs.NewDatabaseError("update", "failed to update payment title", err)
	}
	return nil
}
