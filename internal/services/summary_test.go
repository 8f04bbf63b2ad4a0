package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

func summaryFixture() *fakeLedger {
	return &fakeLedger{
		expenses: []models.Expense{
			{ExpenseID: "e1", UserID: "u1", Title: "Lunch", Amount: 150, Category: "food", Date: helpers.Date(2024, 3, 4)},
			{ExpenseID: "e2", UserID: "u1", Title: "Jeep", Amount: 50, Category: "transport", Date: helpers.Date(2024, 3, 5)},
			{ExpenseID: "e3", UserID: "u1", Title: "Old", Amount: 75, Category: "food", Date: helpers.Date(2024, 2, 1)},
			{ExpenseID: "e4", UserID: "u2", Title: "Not mine", Amount: 999, Category: "food", Date: helpers.Date(2024, 3, 5)},
		},
		payments: []models.Payment{
			{PaymentID: "p1", RequiredExpenseID: "r1", StudentID: "u1", Amount: 500, PaidAt: helpers.Date(2024, 3, 6), ExpenseTitle: "Tuition"},
		},
		required: []models.RequiredExpense{
			{RequiredExpenseID: "r1", Title: "Tuition"},
			{RequiredExpenseID: "r2", Title: "Lab Fee"},
			{RequiredExpenseID: "r3", Title: "Library Fee"},
			{RequiredExpenseID: "r4", Title: "Registration"},
			{RequiredExpenseID: "r5", Title: "Miscellaneous"},
		},
		budget: &models.Budget{UserID: "u1", WeeklyBudget: helpers.Ptr(1000.0), Period: models.PeriodWeek},
	}
}

func newTestSummaryService(l *fakeLedger) *summaryService {
	svc := NewSummaryService(l, SummaryOptions{RecentLimit: 5, UnpaidLimit: 3})
	svc.now = clock
	return svc
}

func TestSummaryHome(t *testing.T) {
	svc := newTestSummaryService(summaryFixture())

	home, err := svc.Home(helpers.TestCtx(), "u1")
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	if !home.TotalSpent.Equal(decimal.NewFromInt(775)) {
		t.Errorf("expected total 775, got %s", home.TotalSpent)
	}
	if !home.Budget.WeeklySpent.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected weekly spent 700, got %s", home.Budget.WeeklySpent)
	}
	if home.Budget.Remaining == nil || !home.Budget.Remaining.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected remaining 300, got %v", home.Budget.Remaining)
	}
	if len(home.Recent) != 4 || !home.Recent[0].IsSchoolPayment {
		t.Errorf("expected payment first among 4 recent items, got %+v", home.Recent)
	}
	if len(home.Unpaid) != 3 || home.Unpaid[0].RequiredExpenseID != "r2" {
		t.Errorf("expected first 3 unpaid starting at r2, got %+v", home.Unpaid)
	}
	if !home.Week.Start.Equal(helpers.Date(2024, 3, 3)) {
		t.Errorf("expected week to start Sunday 3 March, got %v", home.Week.Start)
	}
}

func TestSummaryHomeWithoutBudget(t *testing.T) {
	l := summaryFixture()
	l.budget = nil
	svc := newTestSummaryService(l)

	home, err := svc.Home(helpers.TestCtx(), "u1")
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if home.Budget.Configured || home.Budget.Remaining != nil {
		t.Fatalf("expected unconfigured budget, got %+v", home.Budget)
	}
}

func TestSummaryHomeFailsOnAnyFetchError(t *testing.T) {
	l := summaryFixture()
	l.err = errs.NewDatabaseError("read", "failed to list expenses", errors.New("boom"))
	svc := newTestSummaryService(l)

	_, err := svc.Home(helpers.TestCtx(), "u1")
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError, got %v", err)
	}
}

func TestSummaryReportWeek(t *testing.T) {
	l := summaryFixture()
	svc := newTestSummaryService(l)

	report, err := svc.Report(helpers.TestCtx(), "u1", "week")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !report.TotalSpent.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected 700, got %s", report.TotalSpent)
	}
	if len(report.Categories) != 3 || report.Categories[0].Category != taxonomy.SchoolPayment {
		t.Fatalf("unexpected categories %+v", report.Categories)
	}
	if len(l.windows) != 1 || l.windows[0] == nil {
		t.Fatal("expected the window to be passed to the expense query")
	}
}

func TestSummaryReportMonthAndDefault(t *testing.T) {
	svc := newTestSummaryService(summaryFixture())

	month, err := svc.Report(helpers.TestCtx(), "u1", "month")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !month.TotalSpent.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected March total 700, got %s", month.TotalSpent)
	}

	def, err := svc.Report(helpers.TestCtx(), "u1", "")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if def.Period != models.PeriodWeek {
		t.Errorf("expected default period week, got %s", def.Period)
	}
}

func TestSummaryReportRejectsUnknownPeriod(t *testing.T) {
	svc := newTestSummaryService(summaryFixture())
	_, err := svc.Report(helpers.TestCtx(), "u1", "year")
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSummaryHomeCorruptStoredAmount(t *testing.T) {
	l := summaryFixture()
	l.expenses[0].Amount = -150
	svc := newTestSummaryService(l)

	_, err := svc.Home(helpers.TestCtx(), "u1")
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError for a corrupt stored amount, got %v", err)
	}
	var invalid *errs.ValidationError
	if errors.As(err, &invalid) {
		t.Fatalf("a stored data fault must not read as client input: %v", err)
	}
}
