package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

const dateLayout = "2006-01-02"

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.NewValidationError("invalid request body")
	}
	return nil
}

// queryTime accepts RFC 3339 or a plain date. A plain "to" date covers
// the whole day.
func queryTime(r *http.Request, key string, endOfDay bool) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errs.NewValidationError(key + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
