package services

import (
	"context"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

const untitledExpense = "Untitled Expense"

type backfillPaymentStore interface {
	ListAll(ctx context.Context) ([]models.Payment, error)
	UpdateTitle(ctx context.Context, paymentID, title string) error
}

type backfillRequiredStore interface {
	Get(ctx context.Context, id string) (*models.RequiredExpense, error)
}

type backfillService struct {
	payments backfillPaymentStore
	required backfillRequiredStore
}

func NewBackfillService(payments backfillPaymentStore, required backfillRequiredStore) *backfillService {
	return &backfillService{payments: payments, required: required}
}

// FixPaymentTitles copies the required expense title onto payments that
// were stored without one. Payments whose required expense is gone are
// skipped. With dryRun nothing is written.
func (s *backfillService) FixPaymentTitles(ctx context.Context, dryRun bool) (dto.BackfillResult, error) {
	log := logger.FromContext(ctx)
	result := dto.BackfillResult{DryRun: dryRun}

	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return result, err
	}

	titles := map[string]string{}
	for _, p := range payments {
		result.Scanned++
		if p.ExpenseTitle != "" && p.ExpenseTitle != untitledExpense {
			continue
		}

		title, ok := titles[p.RequiredExpenseID]
		if !ok {
			r, err := s.required.Get(ctx, p.RequiredExpenseID)
			switch {
			case err == nil:
				title = r.Title
				if title == "" {
					title = taxonomy.SchoolPayment
				}
			case isNotFound(err):
				title = ""
			default:
				return result, err
			}
			titles[p.RequiredExpenseID] = title
		}

		if title == "" {
			log.Warn("required expense missing, skipping payment", "payment_id", p.PaymentID, "required_expense_id", p.RequiredExpenseID)
			result.Skipped++
			continue
		}

		if !dryRun {
			if err := s.payments.UpdateTitle(ctx, p.PaymentID, title); err != nil {
				return result, err
			}
		}
		log.Info("payment title fixed", "payment_id", p.PaymentID, "title", title, "dry_run", dryRun)
		result.Fixed++
	}

	return result, nil
}
