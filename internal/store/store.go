package store

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

const (
	usersCollection            = "users"
	expensesCollection         = "expenses"
	requiredExpensesCollection = "requiredExpenses"
	paymentsCollection         = "expensePayments"
	budgetsCollection          = "budgets"
	collegesCollection         = "colleges"
	coursesCollection          = "courses"
)

// readAll drains iter into a slice of T. what names the records in
// error messages.
func readAll[T any](iter *firestore.DocumentIterator, what string) ([]T, error) {
	defer iter.Stop()

	out := make([]T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list "+what, err)
		}
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse "+what+" data", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// readOne fetches and decodes a single document.
func readOne[T any](snap *firestore.DocumentSnapshot, err error, what string) (*T, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError(what + " not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get "+what, err)
	}
	var v T
	if err := snap.DataTo(&v); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse "+what+" data", err)
	}
	return &v, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
