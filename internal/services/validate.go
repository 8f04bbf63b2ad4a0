package services

import (
	"strings"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errs.NewValidationError(field + " is required")
	}
	return v, nil
}

func requireAmount(v *float64) (float64, error) {
	if v == nil {
		return 0, errs.NewValidationError("amount is required")
	}
	if err := aggregate.ValidateAmount(*v); err != nil {
		return 0, err
	}
	return *v, nil
}

func validatePeriod(p string) (string, error) {
	switch p {
	case "":
		return models.PeriodWeek, nil
	case models.PeriodWeek, models.PeriodMonth:
		return p, nil
	}
	return "", errs.NewValidationError("period must be week or month")
}
