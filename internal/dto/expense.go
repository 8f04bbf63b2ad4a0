package dto

import "time"

type CreateExpenseRequest struct {
	Title       string     `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

// UpdateExpenseRequest carries only the fields being changed.
type UpdateExpenseRequest struct {
	Title       *string    `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type ExpenseQuery struct {
	From *time.Time
	To   *time.Time
}
