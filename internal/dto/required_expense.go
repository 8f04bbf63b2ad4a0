package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type CreateRequiredExpenseRequest struct {
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Amount      *float64   `json:"amount"`
	DueDate     *time.Time `json:"dueDate"`
	Description string     `json:"description"`
}

type UpdateRequiredExpenseRequest struct {
	Title       *string    `json:"title"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	DueDate     *time.Time `json:"dueDate"`
	Description *string    `json:"description"`
}

// PaymentStats counts payment records, not distinct students: a
// duplicated payment is counted twice.
type PaymentStats struct {
	PaidCount      int             `json:"paidCount"`
	UnpaidCount    int             `json:"unpaidCount"`
	TotalStudents  int             `json:"totalStudents"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	PaidPercentage decimal.Decimal `json:"paidPercentage"`
}

type PaidStudent struct {
	PaymentID   string          `json:"paymentId"`
	StudentUID  string          `json:"studentUid"`
	StudentName string          `json:"studentName"`
	StudentID   string          `json:"studentId"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paidAt"`
}

type RequiredExpenseWithStats struct {
	models.RequiredExpense
	Stats PaymentStats `json:"stats"`
}

type RequiredExpensePayments struct {
	RequiredExpense models.RequiredExpense `json:"requiredExpense"`
	Stats           PaymentStats           `json:"stats"`
	Paid            []PaidStudent          `json:"paid"`
	Unpaid          []models.User          `json:"unpaid"`
}

// StudentRequiredExpense is a required expense as one student sees it.
type StudentRequiredExpense struct {
	models.RequiredExpense
	Paid bool `json:"paid"`
}
