package models

import (
	"time"
)

// Payment records that one student satisfied one RequiredExpense.
// ExpenseTitle is copied from the required expense at payment time.
type Payment struct {
	PaymentID         string    `firestore:"paymentId" json:"paymentId"`
	RequiredExpenseID string    `firestore:"expenseId" json:"requiredExpenseId"`
	StudentID         string    `firestore:"studentId" json:"studentId"`
	StudentName       string    `firestore:"studentName" json:"studentName"`
	StudentEmail      string    `firestore:"studentEmail" json:"studentEmail"`
	Amount            float64   `firestore:"amount" json:"amount"`
	PaidAt            time.Time `firestore:"paidAt" json:"paidAt"`
	ExpenseTitle      string    `firestore:"expenseTitle" json:"expenseTitle"`
}
