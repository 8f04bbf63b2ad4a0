package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
)

type expenseEntry struct {
	expense models.Expense
	amount  decimal.Decimal
}

type paymentEntry struct {
	payment models.Payment
	amount  decimal.Decimal
}

// Ledger is one account's personal expenses and required-expense
// payments with amounts already validated and converted.
type Ledger struct {
	expenses []expenseEntry
	payments []paymentEntry
}

// Palette names and colors a raw category id.
type Palette func(category string) (name, color string)

// PersonalPalette uses the personal category table; ids not in it are
// title-cased and get the default color.
func PersonalPalette(category string) (string, string) {
	if taxonomy.IsPersonal(category) {
		c := taxonomy.Lookup(category)
		return c.Name, c.Color
	}
	return taxonomy.TitleCase(category), taxonomy.DefaultColor
}

// ReportPalette is the admin-wide report palette.
func ReportPalette(category string) (string, string) {
	return taxonomy.TitleCase(category), taxonomy.ReportColor(category)
}

// NewLedger fails with a ValidationError if any stored amount is
// negative or not finite.
func NewLedger(expenses []models.Expense, payments []models.Payment) (*Ledger, error) {
	l := &Ledger{
		expenses: make([]expenseEntry, 0, len(expenses)),
		payments: make([]paymentEntry, 0, len(payments)),
	}
	for _, e := range expenses {
		amt, err := recordAmount("expense", e.ExpenseID, e.Amount)
		if err != nil {
			return nil, err
		}
		l.expenses = append(l.expenses, expenseEntry{expense: e, amount: amt})
	}
	for _, p := range payments {
		amt, err := recordAmount("payment", p.PaymentID, p.Amount)
		if err != nil {
			return nil, err
		}
		l.payments = append(l.payments, paymentEntry{payment: p, amount: amt})
	}
	return l, nil
}

// PersonalTotal sums personal expenses dated inside w.
func (l *Ledger) PersonalTotal(w *dto.Window) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		if w.Contains(e.expense.Date) {
			total = total.Add(e.amount)
		}
	}
	return total
}

// PaymentTotal sums payments made inside w.
func (l *Ledger) PaymentTotal(w *dto.Window) decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.payments {
		if w.Contains(p.payment.PaidAt) {
			total = total.Add(p.amount)
		}
	}
	return total
}

// Total is personal spending plus school payments inside w.
func (l *Ledger) Total(w *dto.Window) decimal.Decimal {
	return l.PersonalTotal(w).Add(l.PaymentTotal(w))
}

// Breakdown groups spending in w by category. Payments collapse into a
// single School Payment bucket, present only when it is non-zero.
// Buckets are ordered by amount, largest first.
func (l *Ledger) Breakdown(w *dto.Window, palette Palette) []dto.CategoryBucket {
	totals := map[string]decimal.Decimal{}
	for _, e := range l.expenses {
		if !w.Contains(e.expense.Date) {
			continue
		}
		key := e.expense.Category
		if key == "" {
			key = taxonomy.CategoryOther
		}
		totals[key] = totals[key].Add(e.amount)
	}

	total := l.Total(w)
	buckets := make([]dto.CategoryBucket, 0, len(totals)+1)
	for key, amt := range totals {
		name, color := palette(key)
		buckets = append(buckets, dto.CategoryBucket{
			Category:   key,
			Name:       name,
			Amount:     amt,
			Color:      color,
			Percentage: Percentage(amt, total),
		})
	}
	if school := l.PaymentTotal(w); school.IsPositive() {
		buckets = append(buckets, dto.CategoryBucket{
			Category:   taxonomy.SchoolPayment,
			Name:       taxonomy.SchoolPayment,
			Amount:     school,
			Color:      taxonomy.SchoolPaymentColor,
			Percentage: Percentage(school, total),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if c := buckets[i].Amount.Cmp(buckets[j].Amount); c != 0 {
			return c > 0
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// Recent merges expenses and payments newest first. limit <= 0 keeps
// everything. Equal dates keep expenses ahead of payments.
func (l *Ledger) Recent(limit int) []dto.Activity {
	out := make([]dto.Activity, 0, len(l.expenses)+len(l.payments))
	for _, e := range l.expenses {
		out = append(out, dto.Activity{
			ID:       e.expense.ExpenseID,
			Title:    e.expense.Title,
			Amount:   e.amount,
			Category: e.expense.Category,
			Date:     e.expense.Date,
		})
	}
	for _, p := range l.payments {
		title := p.payment.ExpenseTitle
		if title == "" {
			title = taxonomy.SchoolPayment
		}
		out = append(out, dto.Activity{
			ID:              p.payment.PaymentID,
			Title:           title,
			Amount:          p.amount,
			Category:        taxonomy.SchoolPayment,
			Date:            p.payment.PaidAt,
			IsSchoolPayment: true,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CountSince counts personal expenses dated at or after t.
func (l *Ledger) CountSince(t time.Time) int {
	n := 0
	for _, e := range l.expenses {
		if !e.expense.Date.Before(t) {
			n++
		}
	}
	return n
}
