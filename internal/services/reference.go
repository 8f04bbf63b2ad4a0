package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
)

type referenceStore interface {
	CreateCollege(ctx context.Context, c *models.College) error
	GetCollege(ctx context.Context, id string) (*models.College, error)
	UpdateCollege(ctx context.Context, c *models.College) error
	DeleteCollege(ctx context.Context, id string) error
	ListColleges(ctx context.Context) ([]models.College, error)

	CreateCourse(ctx context.Context, c *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	UpdateCourse(ctx context.Context, c *models.Course) error
	DeleteCourse(ctx context.Context, id string) error
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListCoursesByCollege(ctx context.Context, collegeID string) ([]models.Course, error)
}

type referenceService struct {
	store referenceStore
}

func NewReferenceService(store referenceStore) *referenceService {
	return &referenceService{store: store}
}

func (s *referenceService) ListColleges(ctx context.Context) ([]models.College, error) {
	return s.store.ListColleges(ctx)
}

func (s *referenceService) CreateCollege(ctx context.Context, req dto.CollegeRequest) (*models.College, error) {
	code, name, err := codeAndName(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	c := &models.College{
		CollegeID:   uuid.New().String(),
		Code:        code,
		Name:        name,
		Description: req.Description,
	}
	if err := s.store.CreateCollege(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *referenceService) UpdateCollege(ctx context.Context, id string, req dto.CollegeRequest) (*models.College, error) {
	c, err := s.store.GetCollege(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Code, c.Name, err = codeAndName(req.Code, req.Name); err != nil {
		return nil, err
	}
	c.Description = req.Description
	if err := s.store.UpdateCollege(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCollege does not cascade to its courses.
func (s *referenceService) DeleteCollege(ctx context.Context, id string) error {
	if _, err := s.store.GetCollege(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteCollege(ctx, id)
}

func (s *referenceService) ListCourses(ctx context.Context, collegeID string) ([]models.Course, error) {
	if _, err := s.store.GetCollege(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.store.ListCoursesByCollege(ctx, collegeID)
}

func (s *referenceService) CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	code, name, err := codeAndName(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	collegeID, err := requireText("collegeId", req.CollegeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetCollege(ctx, collegeID); err != nil {
		return nil, err
	}

	c := &models.Course{
		CourseID:    uuid.New().String(),
		CollegeID:   collegeID,
		Code:        code,
		Name:        name,
		Description: req.Description,
	}
	if err := s.store.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *referenceService) UpdateCourse(ctx context.Context, id string, req dto.CourseRequest) (*models.Course, error) {
	c, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Code, c.Name, err = codeAndName(req.Code, req.Name); err != nil {
		return nil, err
	}
	if req.CollegeID != "" && req.CollegeID != c.CollegeID {
		if _, err := s.store.GetCollege(ctx, req.CollegeID); err != nil {
			return nil, err
		}
		c.CollegeID = req.CollegeID
	}
	c.Description = req.Description
	if err := s.store.UpdateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *referenceService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.store.GetCourse(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteCourse(ctx, id)
}

func codeAndName(code, name string) (string, string, error) {
	code, err := requireText("code", taxonomy.NormalizeCode(code))
	if err != nil {
		return "", "", err
	}
	name, err = requireText("name", name)
	if err != nil {
		return "", "", err
	}
	return code, name, nil
}
