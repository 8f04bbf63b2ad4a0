package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

// PaidSet returns the required expense ids uid holds at least one
// payment for.
func PaidSet(payments []models.Payment, uid string) map[string]bool {
	paid := make(map[string]bool, len(payments))
	for _, p := range payments {
		if p.StudentID == uid {
			paid[p.RequiredExpenseID] = true
		}
	}
	return paid
}

// Unpaid keeps the required expenses uid has no payment for, in input
// order. limit <= 0 keeps all of them.
func Unpaid(required []models.RequiredExpense, payments []models.Payment, uid string, limit int) []models.RequiredExpense {
	paid := PaidSet(payments, uid)
	out := make([]models.RequiredExpense, 0, len(required))
	for _, r := range required {
		if paid[r.RequiredExpenseID] {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func paymentsFor(payments []models.Payment, requiredExpenseID string) []models.Payment {
	out := make([]models.Payment, 0)
	for _, p := range payments {
		if p.RequiredExpenseID == requiredExpenseID {
			out = append(out, p)
		}
	}
	return out
}

// PaymentStats assumes every student owes every required expense.
func PaymentStats(students []models.User, payments []models.Payment, requiredExpenseID string) (dto.PaymentStats, error) {
	matched := paymentsFor(payments, requiredExpenseID)
	collected := decimal.Zero
	for _, p := range matched {
		amt, err := recordAmount("payment", p.PaymentID, p.Amount)
		if err != nil {
			return dto.PaymentStats{}, err
		}
		collected = collected.Add(amt)
	}

	stats := dto.PaymentStats{
		PaidCount:      len(matched),
		UnpaidCount:    len(students) - len(matched),
		TotalStudents:  len(students),
		TotalCollected: collected,
		PaidPercentage: decimal.Zero,
	}
	if len(students) > 0 {
		stats.PaidPercentage = decimal.NewFromInt(int64(len(matched))).
			Div(decimal.NewFromInt(int64(len(students)))).
			Mul(hundred).
			Round(0)
	}
	return stats, nil
}

// PaidStudents lists one row per payment record, joined to the student
// when the account still exists.
func PaidStudents(students []models.User, payments []models.Payment, requiredExpenseID string) ([]dto.PaidStudent, error) {
	byUID := make(map[string]models.User, len(students))
	for _, s := range students {
		byUID[s.UID] = s
	}

	matched := paymentsFor(payments, requiredExpenseID)
	out := make([]dto.PaidStudent, 0, len(matched))
	for _, p := range matched {
		amt, err := recordAmount("payment", p.PaymentID, p.Amount)
		if err != nil {
			return nil, err
		}
		row := dto.PaidStudent{
			PaymentID:   p.PaymentID,
			StudentUID:  p.StudentID,
			StudentName: p.StudentName,
			StudentID:   "N/A",
			Amount:      amt,
			PaidAt:      p.PaidAt,
		}
		if s, ok := byUID[p.StudentID]; ok {
			row.StudentName = s.Name
			if s.StudentID != "" {
				row.StudentID = s.StudentID
			}
		}
		if row.StudentName == "" {
			row.StudentName = "Unknown"
		}
		out = append(out, row)
	}
	return out, nil
}

// UnpaidStudents lists students with no payment for the required expense.
func UnpaidStudents(students []models.User, payments []models.Payment, requiredExpenseID string) []models.User {
	paid := map[string]bool{}
	for _, p := range paymentsFor(payments, requiredExpenseID) {
		paid[p.StudentID] = true
	}
	out := make([]models.User, 0, len(students))
	for _, s := range students {
		if !paid[s.UID] {
			out = append(out, s)
		}
	}
	return out
}
