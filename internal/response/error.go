package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		notFound  *errs.NotFoundError
		exists    *errs.AlreadyExistsError
		invalid   *errs.ValidationError
		forbidden *errs.ForbiddenError
		dbErr     *errs.DatabaseError
	)

	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", notFound.Message)

	case errors.As(err, &exists):
		log.Warn("resource already exists", "error", exists.Message)
		h.WriteError(w, r, http.StatusConflict, "already_exists", exists.Message)

	case errors.As(err, &invalid):
		log.Warn("validation failed", "error", invalid.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", invalid.Message)

	case errors.As(err, &forbidden):
		log.Warn("forbidden", "error", forbidden.Message)
		h.WriteError(w, r, http.StatusForbidden, "forbidden", forbidden.Message)

	case errors.As(err, &dbErr):
		log.Error("database error",
			"operation", dbErr.Operation,
			"error", dbErr.Error())
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
