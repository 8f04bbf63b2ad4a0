package models

import (
	"time"
)

// Expense is a self-reported spending record owned by one user.
type Expense struct {
	ExpenseID   string    `firestore:"expenseId" json:"expenseId"`
	UserID      string    `firestore:"userId" json:"userId"`
	Title       string    `firestore:"title" json:"title"`
	Amount      float64   `firestore:"amount" json:"amount"`
	Category    string    `firestore:"category" json:"category"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `firestore:"date" json:"date"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
