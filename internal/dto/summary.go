package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/models"
)

// Activity is one row of the recent transactions list. Paid required
// expenses are projected into the same shape as personal expenses.
type Activity struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Date            time.Time       `json:"date"`
	IsSchoolPayment bool            `json:"isSchoolPayment"`
}

type CategoryBucket struct {
	Category   string          `json:"category"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Color      string          `json:"color"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BudgetStatus distinguishes "no budget" (Configured false, nil figures)
// from a budget explicitly set to zero.
type BudgetStatus struct {
	Configured       bool             `json:"configured"`
	Period           string           `json:"period,omitempty"`
	WeeklyBudget     *decimal.Decimal `json:"weeklyBudget,omitempty"`
	MonthlyBudget    *decimal.Decimal `json:"monthlyBudget,omitempty"`
	WeeklySpent      decimal.Decimal  `json:"weeklySpent"`
	MonthlySpent     decimal.Decimal  `json:"monthlySpent"`
	WeeklyRemaining  *decimal.Decimal `json:"weeklyRemaining,omitempty"`
	MonthlyRemaining *decimal.Decimal `json:"monthlyRemaining,omitempty"`
	Remaining        *decimal.Decimal `json:"remaining,omitempty"`
}

type HomeSummary struct {
	TotalSpent decimal.Decimal          `json:"totalSpent"`
	Week       Window                   `json:"week"`
	Budget     BudgetStatus             `json:"budget"`
	Recent     []Activity               `json:"recent"`
	Unpaid     []models.RequiredExpense `json:"unpaid"`
}

type Report struct {
	Period     string           `json:"period"`
	Window     Window           `json:"window"`
	TotalSpent decimal.Decimal  `json:"totalSpent"`
	Categories []CategoryBucket `json:"categories"`
}
