package dto

type CollegeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CourseRequest struct {
	CollegeID   string `json:"collegeId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
