package dto

import "github.com/GregMSThompson/expense-tracker/internal/models"

type SetBudgetRequest struct {
	WeeklyBudget  *float64 `json:"weeklyBudget"`
	MonthlyBudget *float64 `json:"monthlyBudget"`
	Period        string   `json:"period"`
}

// BudgetResponse is what GET /budget renders; Budget is nil when
// Configured is false.
type BudgetResponse struct {
	Configured bool           `json:"configured"`
	Budget     *models.Budget `json:"budget,omitempty"`
}
