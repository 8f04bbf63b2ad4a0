package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type Deps struct {
	Log                *slog.Logger
	ResponseHandler    response.ResponseHandler
	UserSvc            UserService
	ExpenseSvc         expenseService
	BudgetSvc          budgetService
	SummarySvc         summaryService
	RequiredExpenseSvc requiredExpenseService
	ReferenceSvc       referenceService
	AdminSvc           adminService
}
