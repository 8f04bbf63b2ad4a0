package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type requiredExpenseStore interface {
	Create(ctx context.Context, r *models.RequiredExpense) error
	Get(ctx context.Context, id string) (*models.RequiredExpense, error)
	Update(ctx context.Context, r *models.RequiredExpense) error
	Delete(ctx context.Context, id string) error
}

type paymentWriter interface {
	Create(ctx context.Context, p *models.Payment) error
}

type requiredExpenseLedger interface {
	RequiredExpenses(ctx context.Context) ([]models.RequiredExpense, error)
	Payments(ctx context.Context, uid string) ([]models.Payment, error)
	PaymentsForRequiredExpense(ctx context.Context, requiredExpenseID string) ([]models.Payment, error)
	AllPayments(ctx context.Context) ([]models.Payment, error)
	Students(ctx context.Context) ([]models.User, error)
}

type payerStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
}

type requiredExpenseService struct {
	store    requiredExpenseStore
	payments paymentWriter
	ledger   requiredExpenseLedger
	users    payerStore
	now      func() time.Time
}

func NewRequiredExpenseService(store requiredExpenseStore, payments paymentWriter, ledger requiredExpenseLedger, users payerStore) *requiredExpenseService {
	return &requiredExpenseService{
		store:    store,
		payments: payments,
		ledger:   ledger,
		users:    users,
		now:      time.Now,
	}
}

func (s *requiredExpenseService) Create(ctx context.Context, adminUID string, req dto.CreateRequiredExpenseRequest) (*models.RequiredExpense, error) {
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	category, err := requiredCategory(req.Category)
	if err != nil {
		return nil, err
	}

	r := &models.RequiredExpense{
		RequiredExpenseID: uuid.New().String(),
		Title:             title,
		Category:          category,
		Amount:            amount,
		DueDate:           req.DueDate,
		Description:       req.Description,
		CreatedBy:         adminUID,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("required expense created", "required_expense_id", r.RequiredExpenseID, "amount", amount)
	return r, nil
}

func (s *requiredExpenseService) Update(ctx context.Context, id string, req dto.UpdateRequiredExpenseRequest) (*models.RequiredExpense, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if r.Title, err = requireText("title", *req.Title); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if r.Category, err = requiredCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if r.Amount, err = requireAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		r.DueDate = req.DueDate
	}
	if req.Description != nil {
		r.Description = *req.Description
	}

	if err := s.store.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete leaves existing payments in place; they keep their copied title.
func (s *requiredExpenseService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ListWithStats is the admin list: every required expense with its
// payment statistics against the current student roster.
func (s *requiredExpenseService) ListWithStats(ctx context.Context) ([]dto.RequiredExpenseWithStats, error) {
	var (
		required []models.RequiredExpense
		payments []models.Payment
		students []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		required, err = s.ledger.RequiredExpenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.ledger.AllPayments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.ledger.Students(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]dto.RequiredExpenseWithStats, 0, len(required))
	for _, r := range required {
		stats, err := aggregate.PaymentStats(students, payments, r.RequiredExpenseID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.RequiredExpenseWithStats{RequiredExpense: r, Stats: stats})
	}
	return out, nil
}

// Payments lists who has and has not paid one required expense.
func (s *requiredExpenseService) Payments(ctx context.Context, id string) (dto.RequiredExpensePayments, error) {
	var (
		required *models.RequiredExpense
		payments []models.Payment
		students []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		required, err = s.store.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.ledger.PaymentsForRequiredExpense(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.ledger.Students(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.RequiredExpensePayments{}, err
	}

	stats, err := aggregate.PaymentStats(students, payments, id)
	if err != nil {
		return dto.RequiredExpensePayments{}, err
	}
	paid, err := aggregate.PaidStudents(students, payments, id)
	if err != nil {
		return dto.RequiredExpensePayments{}, err
	}

	return dto.RequiredExpensePayments{
		RequiredExpense: *required,
		Stats:           stats,
		Paid:            paid,
		Unpaid:          aggregate.UnpaidStudents(students, payments, id),
	}, nil
}

// ListForStudent returns every required expense flagged with whether uid
// has paid it.
func (s *requiredExpenseService) ListForStudent(ctx context.Context, uid string) ([]dto.StudentRequiredExpense, error) {
	var (
		required []models.RequiredExpense
		payments []models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		required, err = s.ledger.RequiredExpenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.ledger.Payments(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paid := aggregate.PaidSet(payments, uid)
	out := make([]dto.StudentRequiredExpense, 0, len(required))
	for _, r := range required {
		out = append(out, dto.StudentRequiredExpense{RequiredExpense: r, Paid: paid[r.RequiredExpenseID]})
	}
	return out, nil
}

// MarkPaid records a payment by uid for the full amount. It does not
// check for an earlier payment.
func (s *requiredExpenseService) MarkPaid(ctx context.Context, uid, email, id string) (*models.Payment, error) {
	log := logger.FromContext(ctx)

	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aggregate.ValidateAmount(r.Amount); err != nil {
		return nil, err
	}

	name := email
	user, err := s.users.Get(ctx, uid)
	switch {
	case err == nil:
		if user.Name != "" {
			name = user.Name
		}
		if user.Email != "" {
			email = user.Email
		}
	case isNotFound(err):
		log.Warn("paying student has no profile", "required_expense_id", id)
	default:
		return nil, err
	}

	title := r.Title
	if title == "" {
		title = taxonomy.SchoolPayment
	}

	p := &models.Payment{
		PaymentID:         uuid.New().String(),
		RequiredExpenseID: r.RequiredExpenseID,
		StudentID:         uid,
		StudentName:       name,
		StudentEmail:      email,
		Amount:            r.Amount,
		PaidAt:            s.now(),
		ExpenseTitle:      title,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		log.Error("failed to record payment", "required_expense_id", id, "error", err)
		return nil, err
	}

	log.Info("required expense paid", "required_expense_id", id, "payment_id", p.PaymentID)
	return p, nil
}

func requiredCategory(name string) (string, error) {
	if name == "" {
		return taxonomy.DefaultRequiredCategory, nil
	}
	if !taxonomy.IsRequired(name) {
		return "", errs.NewValidationError("unknown required expense category " + name)
	}
	return name, nil
}

func isNotFound(err error) bool {
	var nf *errs.NotFoundError
	return errors.As(err, &nf)
}
