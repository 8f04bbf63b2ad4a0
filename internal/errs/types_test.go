package errs

import (
	"errors"
	"testing"
)

func TestDatabaseErrorUnwrap(t *testing.T) {
	cause := errors.New("unavailable")
	err := NewDatabaseError("read", "failed to list expenses", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if err.Error() != "failed to list expenses: unavailable" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	var dbErr *DatabaseError
	var wrapped error = err
	if !errors.As(wrapped, &dbErr) || dbErr.Operation != "read" {
		t.Fatalf("expected DatabaseError with read operation, got %#v", wrapped)
	}
}

func TestDatabaseErrorWithoutCause(t *testing.T) {
	err := NewDatabaseError("create", "failed to create payment", nil)
	if err.Error() != "failed to create payment" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
