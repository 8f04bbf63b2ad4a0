package dto

import "github.com/GregMSThompson/expense-tracker/internal/models"

type RegisterRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	StudentID string `json:"studentId"`
	CollegeID string `json:"collegeId"`
	CourseID  string `json:"courseId"`
	YearLevel string `json:"yearLevel"`
}

// UpdateProfileRequest is used both for self edits and admin edits of
// a student; nil fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string           `json:"name"`
	Email     *string           `json:"email"`
	StudentID *string           `json:"studentId"`
	CollegeID *string           `json:"collegeId"`
	CourseID  *string           `json:"courseId"`
	YearLevel *string           `json:"yearLevel"`
	PhotoURL  *string           `json:"photoURL"`
	Allowance *models.Allowance `json:"allowance"`
}
