package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/helpers"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestExpenseWindowQueryWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewExpenseStore(client)
	uid := "user-" + uuid.NewString()

	seed := []models.Expense{
		{ExpenseID: uuid.NewString(), UserID: uid, Title: "Lunch", Amount: 120, Category: "food", Date: helpers.Date(2025, time.January, 10)},
		{ExpenseID: uuid.NewString(), UserID: uid, Title: "Jeep", Amount: 20, Category: "transport", Date: helpers.Date(2025, time.January, 15)},
		{ExpenseID: uuid.NewString(), UserID: "someone-else", Title: "Snack", Amount: 5, Category: "food", Date: helpers.Date(2025, time.January, 15)},
	}
	for i := range seed {
		if err := store.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed expense error: %v", err)
		}
	}

	all, err := store.ListByUser(ctx, uid, nil)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 2 || all[0].Title != "Jeep" {
		t.Fatalf("expected 2 expenses newest first, got %+v", all)
	}

	w := &dto.Window{Start: helpers.Date(2025, time.January, 12), End: helpers.Date(2025, time.January, 20)}
	windowed, err := store.ListByUser(ctx, uid, w)
	if err != nil {
		t.Fatalf("windowed list error: %v", err)
	}
	if len(windowed) != 1 || windowed[0].Title != "Jeep" {
		t.Fatalf("expected only Jeep in window, got %+v", windowed)
	}
}

func TestBudgetUpsertWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewBudgetStore(client)
	uid := "user-" + uuid.NewString()

	if _, found, err := store.Get(ctx, uid); err != nil || found {
		t.Fatalf("expected absent budget, found=%v err=%v", found, err)
	}

	if err := store.Upsert(ctx, &models.Budget{UserID: uid, WeeklyBudget: helpers.Ptr(1000.0), Period: models.PeriodWeek}); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if err := store.Upsert(ctx, &models.Budget{UserID: uid, MonthlyBudget: helpers.Ptr(4000.0), Period: models.PeriodMonth}); err != nil {
		t.Fatalf("second upsert error: %v", err)
	}

	b, found, err := store.Get(ctx, uid)
	if err != nil || !found {
		t.Fatalf("expected budget, found=%v err=%v", found, err)
	}
	if b.WeeklyBudget == nil || *b.WeeklyBudget != 1000 {
		t.Fatalf("expected weekly figure to survive merge, got %v", b.WeeklyBudget)
	}
	if b.MonthlyBudget == nil || *b.MonthlyBudget != 4000 || b.Period != models.PeriodMonth {
		t.Fatalf("unexpected merged budget %+v", b)
	}
}

func TestUserCreateTwiceWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewUserStore(client)
	user := &models.User{UID: "user-" + uuid.NewString(), Name: "Ana", Role: models.RoleStudent}

	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("create error: %v", err)
	}
	err := store.Create(ctx, user)
	if _, ok := err.(*errs.AlreadyExistsError); !ok {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}

	_, err = store.Get(ctx, "missing-"+uuid.NewString())
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPaymentsAreNotDeduplicatedWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewPaymentStore(client)
	reqID := uuid.NewString()

	for i := 0; i < 2; i++ {
		p := &models.Payment{PaymentID: uuid.NewString(), RequiredExpenseID: reqID, StudentID: "u1", Amount: 10}
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create payment error: %v", err)
		}
	}

	got, err := store.ListByRequiredExpense(ctx, reqID)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both payments, got %d", len(got))
	}
}
