package dto

import "github.com/shopspring/decimal"

type AdminOverview struct {
	TotalStudents int             `json:"totalStudents"`
	TotalExpenses int             `json:"totalExpenses"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	ActiveToday   int             `json:"activeToday"`
	TotalColleges int             `json:"totalColleges"`
	TotalCourses  int             `json:"totalCourses"`
}

type AdminReport struct {
	TotalExpenses int              `json:"totalExpenses"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	Categories    []CategoryBucket `json:"categories"`
}
