package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type adminLedger interface {
	AllExpenses(ctx context.Context) ([]models.Expense, error)
	Students(ctx context.Context) ([]models.User, error)
}

type adminReferenceStore interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type adminService struct {
	ledger    adminLedger
	reference adminReferenceStore
	location  *time.Location
	now       func() time.Time
}

func NewAdminService(ledger adminLedger, reference adminReferenceStore, loc *time.Location) *adminService {
	if loc == nil {
		loc = time.UTC
	}
	return &adminService{ledger: ledger, reference: reference, location: loc, now: time.Now}
}

func (s *adminService) Overview(ctx context.Context) (dto.AdminOverview, error) {
	var (
		expenses []models.Expense
		students []models.User
		colleges []models.College
		courses  []models.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.ledger.AllExpenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.ledger.Students(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		colleges, err = s.reference.ListColleges(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = s.reference.ListCourses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.AdminOverview{}, err
	}

	ledger, err := aggregate.NewLedger(expenses, nil)
	if err != nil {
		return dto.AdminOverview{}, err
	}

	return dto.AdminOverview{
		TotalStudents: len(students),
		TotalExpenses: len(expenses),
		TotalAmount:   ledger.Total(nil),
		ActiveToday:   ledger.CountSince(aggregate.DayStart(s.now().In(s.location))),
		TotalColleges: len(colleges),
		TotalCourses:  len(courses),
	}, nil
}

// Report is the all-students category breakdown. Required expense
// payments are excluded.
func (s *adminService) Report(ctx context.Context) (dto.AdminReport, error) {
	expenses, err := s.ledger.AllExpenses(ctx)
	if err != nil {
		return dto.AdminReport{}, err
	}
	return adminReport(expenses)
}

func adminReport(expenses []models.Expense) (dto.AdminReport, error) {
	ledger, err := aggregate.NewLedger(expenses, nil)
	if err != nil {
		return dto.AdminReport{}, err
	}
	return dto.AdminReport{
		TotalExpenses: len(expenses),
		TotalAmount:   ledger.Total(nil),
		Categories:    ledger.Breakdown(nil, aggregate.ReportPalette),
	}, nil
}
