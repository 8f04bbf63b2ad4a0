package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

// Firestore's timestamp range.
var (
	minQueryTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxQueryTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

type expenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	Get(ctx context.Context, expenseID string) (*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, expenseID string) error
	ListByUser(ctx context.Context, uid string, w *dto.Window) ([]models.Expense, error)
}

type expenseUserStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
}

type expenseService struct {
	store expenseStore
	users expenseUserStore
	now   func() time.Time
}

func NewExpenseService(store expenseStore, users expenseUserStore) *expenseService {
	return &expenseService{store: store, users: users, now: time.Now}
}

func (s *expenseService) List(ctx context.Context, uid string, q dto.ExpenseQuery) ([]models.Expense, error) {
	if q.From == nil && q.To == nil {
		return s.store.ListByUser(ctx, uid, nil)
	}
	w := dto.Window{Start: minQueryTime, End: maxQueryTime}
	if q.From != nil {
		w.Start = *q.From
	}
	if q.To != nil {
		w.End = *q.To
	}
	if w.End.Before(w.Start) {
		return nil, errs.NewValidationError("from must not be after to")
	}
	return s.store.ListByUser(ctx, uid, &w)
}

func (s *expenseService) Create(ctx context.Context, uid string, req dto.CreateExpenseRequest) (*models.Expense, error) {
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	category, err := personalCategory(req.Category)
	if err != nil {
		return nil, err
	}

	date := helpers.ValueOr(req.Date, s.now())

	e := &models.Expense{
		ExpenseID:   uuid.New().String(),
		UserID:      uid,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Description: req.Description,
		Date:        date,
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("expense created", "expense_id", e.ExpenseID, "category", category)
	return e, nil
}

func (s *expenseService) Get(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	return s.authorized(ctx, uid, expenseID)
}

func (s *expenseService) Update(ctx context.Context, uid, expenseID string, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	e, err := s.authorized(ctx, uid, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if e.Title, err = requireText("title", *req.Title); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if e.Amount, err = requireAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if e.Category, err = personalCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}

	if err := s.store.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *expenseService) Delete(ctx context.Context, uid, expenseID string) error {
	if _, err := s.authorized(ctx, uid, expenseID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, expenseID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("expense deleted", "expense_id", expenseID)
	return nil
}

// authorized loads the expense if uid owns it or is an admin.
func (s *expenseService) authorized(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	e, err := s.store.Get(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if e.UserID == uid {
		return e, nil
	}
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, errs.NewForbiddenError("expense belongs to another user")
	}
	return e, nil
}

func personalCategory(id string) (string, error) {
	if id == "" {
		return taxonomy.CategoryOther, nil
	}
	if !taxonomy.IsPersonal(id) {
		return "", errs.NewValidationError("unknown category " + id)
	}
	return id, nil
}
