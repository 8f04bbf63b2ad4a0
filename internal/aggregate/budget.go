package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

// Remaining is max(0, budget - spent), or nil when no budget figure is set.
func Remaining(budget *decimal.Decimal, spent decimal.Decimal) *decimal.Decimal {
	if budget == nil {
		return nil
	}
	left := budget.Sub(spent)
	if left.IsNegative() {
		left = decimal.Zero
	}
	return &left
}

func optionalAmount(kind string, v *float64) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := recordAmount("budget", kind, *v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// BudgetStatus reports remaining allowance against weekly and monthly
// spending. A nil budget yields Configured=false with no figures.
func BudgetStatus(b *models.Budget, weeklySpent, monthlySpent decimal.Decimal) (dto.BudgetStatus, error) {
	status := dto.BudgetStatus{
		WeeklySpent:  weeklySpent,
		MonthlySpent: monthlySpent,
	}
	if b == nil {
		return status, nil
	}

	weekly, err := optionalAmount("weeklyBudget", b.WeeklyBudget)
	if err != nil {
		return status, err
	}
	monthly, err := optionalAmount("monthlyBudget", b.MonthlyBudget)
	if err != nil {
		return status, err
	}

	status.Configured = true
	status.Period = b.Period
	status.WeeklyBudget = weekly
	status.MonthlyBudget = monthly
	status.WeeklyRemaining = Remaining(weekly, weeklySpent)
	status.MonthlyRemaining = Remaining(monthly, monthlySpent)

	switch b.Period {
	case models.PeriodMonth:
		status.Remaining = status.MonthlyRemaining
	default:
		status.Remaining = status.WeeklyRemaining
	}
	return status, nil
}
