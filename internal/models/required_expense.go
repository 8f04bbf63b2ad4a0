package models

import (
	"time"
)

// RequiredExpense is an admin-defined fee every student owes until paid.
type RequiredExpense struct {
	RequiredExpenseID string     `firestore:"requiredExpenseId" json:"requiredExpenseId"`
	Title             string     `firestore:"title" json:"title"`
	Category          string     `firestore:"category" json:"category"`
	Amount            float64    `firestore:"amount" json:"amount"`
	DueDate           *time.Time `firestore:"dueDate,omitempty" json:"dueDate,omitempty"`
	Description       string     `firestore:"description,omitempty" json:"description,omitempty"`
	CreatedBy         string     `firestore:"createdBy" json:"createdBy"`
	CreatedAt         time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
