package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/response"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type adminService interface {
	Overview(ctx context.Context) (dto.AdminOverview, error)
	Report(ctx context.Context) (dto.AdminReport, error)
	ExportReport(ctx context.Context, w io.Writer) error
}

type adminHandlers struct {
	ResponseHandler response.ResponseHandler
	AdminSvc        adminService
	UserSvc         UserService
}

func NewAdminHandlers(deps *Deps) *adminHandlers {
	return &adminHandlers{
		ResponseHandler: deps.ResponseHandler,
		AdminSvc:        deps.AdminSvc,
		UserSvc:         deps.UserSvc,
	}
}

func (h *adminHandlers) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/overview", h.Overview)
	r.Get("/reports", h.Report)
	r.Get("/reports/export", h.ExportReport)
	r.Get("/students", h.ListStudents)
	r.Put("/students/{uid}", h.UpdateStudent)
	r.Delete("/students/{uid}", h.DeleteStudent)
	return r
}

func (h *adminHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.AdminSvc.Overview(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, overview)
}

func (h *adminHandlers) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.AdminSvc.Report(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

// ExportReport buffers the workbook so a failure can still be reported
// as JSON.
func (h *adminHandlers) ExportReport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.AdminSvc.ExportReport(r.Context(), &buf); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	filename := fmt.Sprintf("expense-report-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("failed to write report export", "error", err)
	}
}

func (h *adminHandlers) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.UserSvc.ListStudents(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, students)
}

func (h *adminHandlers) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	student, err := h.UserSvc.UpdateStudent(r.Context(), chi.URLParam(r, "uid"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, student)
}

func (h *adminHandlers) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.UserSvc.DeleteStudent(r.Context(), chi.URLParam(r, "uid")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
