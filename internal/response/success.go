package response

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// WriteSuccess encodes before writing the header, so data that cannot
// be rendered turns into a 500 error envelope instead of a truncated body.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(SuccessEnvelope{Success: true, Data: data})
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode success response", "error", err, "status", status)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write success response", "error", err)
	}
}
