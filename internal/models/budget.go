package models

import (
	"time"
)

// Budget is keyed by the owner's uid. Nil figures were never set.
type Budget struct {
	UserID        string    `firestore:"userId" json:"userId"`
	WeeklyBudget  *float64  `firestore:"weeklyBudget,omitempty" json:"weeklyBudget,omitempty"`
	MonthlyBudget *float64  `firestore:"monthlyBudget,omitempty" json:"monthlyBudget,omitempty"`
	Period        string    `firestore:"period" json:"period"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
