package models

import (
	"time"
)

type College struct {
	CollegeID   string    `firestore:"collegeId" json:"collegeId"`
	Code        string    `firestore:"code" json:"code"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Course struct {
	CourseID    string    `firestore:"courseId" json:"courseId"`
	CollegeID   string    `firestore:"collegeId" json:"collegeId"`
	Code        string    `firestore:"code" json:"code"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
