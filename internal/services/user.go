package services

import (
	"context"
	"strings"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type userUSStore interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, uid string) error
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

type userService struct {
	Store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{
		Store: store,
	}
}

// Register creates the profile for a freshly signed-up account. The
// admin role is only granted when no admin exists yet.
func (s *userService) Register(ctx context.Context, uid, email string, req dto.RegisterRequest) (*models.User, error) {
	log := logger.FromContext(ctx)

	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}

	role := models.RoleStudent
	if req.Role == models.RoleAdmin {
		exists, err := s.Store.AdminExists(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			role = models.RoleAdmin
		} else {
			log.Warn("admin role requested but an admin already exists")
		}
	}

	user := &models.User{
		UID:       uid,
		Role:      role,
		Name:      name,
		Email:     email,
		StudentID: strings.TrimSpace(req.StudentID),
		CollegeID: req.CollegeID,
		CourseID:  req.CourseID,
		YearLevel: req.YearLevel,
	}
	if err := s.Store.Create(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return nil, err
	}

	log.Info("user registered", "role", role)
	log.Debug("user registered with full details", "user", user)
	return user, nil
}

func (s *userService) Get(ctx context.Context, uid string) (*models.User, error) {
	return s.Store.Get(ctx, uid)
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := applyProfile(user, req); err != nil {
		return nil, err
	}
	if err := s.Store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListStudents(ctx context.Context) ([]models.User, error) {
	return s.Store.ListByRole(ctx, models.RoleStudent)
}

func (s *userService) UpdateStudent(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.student(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := applyProfile(user, req); err != nil {
		return nil, err
	}
	if err := s.Store.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("student updated by admin", "student_uid", uid)
	return user, nil
}

// DeleteStudent removes the profile only; expenses and payments stay.
func (s *userService) DeleteStudent(ctx context.Context, uid string) error {
	if _, err := s.student(ctx, uid); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, uid); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("student deleted by admin", "student_uid", uid)
	return nil
}

func (s *userService) student(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.Store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, errs.NewForbiddenError("only student accounts can be managed here")
	}
	return user, nil
}

func applyProfile(user *models.User, req dto.UpdateProfileRequest) error {
	if req.Name != nil {
		name, err := requireText("name", *req.Name)
		if err != nil {
			return err
		}
		user.Name = name
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.StudentID != nil {
		user.StudentID = strings.TrimSpace(*req.StudentID)
	}
	user.CollegeID = helpers.ValueOr(req.CollegeID, user.CollegeID)
	user.CourseID = helpers.ValueOr(req.CourseID, user.CourseID)
	user.YearLevel = helpers.ValueOr(req.YearLevel, user.YearLevel)
	user.PhotoURL = helpers.ValueOr(req.PhotoURL, user.PhotoURL)
	if req.Allowance != nil {
		if err := aggregate.ValidateAmount(req.Allowance.Amount); err != nil {
			return err
		}
		period, err := validatePeriod(req.Allowance.Period)
		if err != nil {
			return err
		}
		user.Allowance = &models.Allowance{Amount: req.Allowance.Amount, Period: period}
	}
	return nil
}
