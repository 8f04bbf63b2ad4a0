package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type referenceStore struct {
	client *firestore.Client
}

// NewReferenceStore serves the colleges and courses lookup tables.
func NewReferenceStore(client *firestore.Client) *referenceStore {
	return &referenceStore{client: client}
}

func (s *referenceStore) colleges() *firestore.CollectionRef {
	return s.client.Collection(collegesCollection)
}

func (s *referenceStore) courses() *firestore.CollectionRef {
	return s.client.Collection(coursesCollection)
}

func (s *referenceStore) CreateCollege(ctx context.Context, c *models.College) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if _, err := s.colleges().Doc(c.CollegeID).Set(ctx, c); err != nil {
		return errs.NewDatabaseError("create", "failed to create college", err)
	}
	return nil
}

func (s *referenceStore) GetCollege(ctx context.Context, id string) (*models.College, error) {
	snap, err := s.colleges().Doc(id).Get(ctx)
	return readOne[models.College](snap, err, "college")
}

func (s *referenceStore) UpdateCollege(ctx context.Context, c *models.College) error {
	c.UpdatedAt = time.Now()
	if _, err := s.colleges().Doc(c.CollegeID).Set(ctx, c); err != nil {
		return errs.NewDatabaseError("update", "failed to update college", err)
	}
	return nil
}

func (s *referenceStore) DeleteCollege(ctx context.Context, id string) error {
	if _, err := s.colleges().Doc(id).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete college", err)
	}
	return nil
}

func (s *referenceStore) ListColleges(ctx context.Context) ([]models.College, error) {
	iter := s.colleges().OrderBy("name", firestore.Asc).Documents(ctx)
	return readAll[models.College](iter, "colleges")
}

func (s *referenceStore) CreateCourse(ctx context.Context, c *models.Course) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if _, err := s.courses().Doc(c.CourseID).Set(ctx, c); err != nil {
		return errs.NewDatabaseError("create", "failed to create course", err)
	}
	return nil
}

func (s *referenceStore) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	snap, err := s.courses().Doc(id).Get(ctx)
	return readOne[models.Course](snap, err, "course")
}

func (s *referenceStore) UpdateCourse(ctx context.Context, c *models.Course) error {
	c.UpdatedAt = time.Now()
	if _, err := s.courses().Doc(c.CourseID).Set(ctx, c); err != nil {
		return errs.NewDatabaseError("update", "failed to update course", err)
	}
	return nil
}

func (s *referenceStore) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.courses().Doc(id).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete course", err)
	}
	return nil
}

func (s *referenceStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	iter := s.courses().OrderBy("name", firestore.Asc).Documents(ctx)
	return readAll[models.Course](iter, "courses")
}

// ListCoursesByCollege needs the collegeId+name composite index.
func (s *referenceStore) ListCoursesByCollege(ctx context.Context, collegeID string) ([]models.Course, error) {
	iter := s.courses().Where("collegeId", "==", collegeID).OrderBy("name", firestore.Asc).Documents(ctx)
	return readAll[models.Course](iter, "courses")
}
