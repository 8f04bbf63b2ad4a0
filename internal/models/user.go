package models

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

type User struct {
	UID       string     `firestore:"uid" json:"uid"`
	Role      string     `firestore:"role" json:"role"`
	Name      string     `firestore:"name" json:"name"`
	Email     string     `firestore:"email" json:"email"`
	StudentID string     `firestore:"studentId,omitempty" json:"studentId,omitempty"`
	CollegeID string     `firestore:"collegeId,omitempty" json:"collegeId,omitempty"`
	CourseID  string     `firestore:"courseId,omitempty" json:"courseId,omitempty"`
	YearLevel string     `firestore:"yearLevel,omitempty" json:"yearLevel,omitempty"`
	Allowance *Allowance `firestore:"allowance,omitempty" json:"allowance,omitempty"`
	PhotoURL  string     `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

// Allowance is the spending allowance configured on a profile.
type Allowance struct {
	Amount float64 `firestore:"amount" json:"amount"`
	Period string  `firestore:"period" json:"period"` // "week" or "month"
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
