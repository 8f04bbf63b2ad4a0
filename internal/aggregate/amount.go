// Package aggregate turns raw ledger records into dashboard figures.
// Everything here is pure: no I/O, no clock, no logging.
package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

var hundred = decimal.NewFromInt(100)

// ValidateAmount rejects NaN, infinities and negative amounts in
// request input.
func ValidateAmount(v float64) error {
	if reason := amountProblem(v); reason != "" {
		return errs.NewValidationError(reason)
	}
	return nil
}

func amountProblem(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "amount must be a finite number"
	case v < 0:
		return "amount must not be negative"
	}
	return ""
}

// Amount converts a request amount to an exact decimal.
func Amount(v float64) (decimal.Decimal, error) {
	if err := ValidateAmount(v); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(v), nil
}

// recordAmount converts a stored amount. A bad stored figure is a data
// fault, not a client error, so it surfaces as a DatabaseError.
func recordAmount(kind, id string, v float64) (decimal.Decimal, error) {
	if reason := amountProblem(v); reason != "" {
		return decimal.Zero, errs.NewDatabaseError("read",
			fmt.Sprintf("invalid stored %s %s", kind, id), errors.New(reason))
	}
	return decimal.NewFromFloat(v), nil
}

// Percentage is part/total*100 rounded to one decimal, or 0 when total is 0.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(1)
}
