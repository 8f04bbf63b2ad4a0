package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type budgetService interface {
	Get(ctx context.Context, uid string) (dto.BudgetResponse, error)
	Set(ctx context.Context, uid string, req dto.SetBudgetRequest) (*models.Budget, error)
}

type summaryService interface {
	Home(ctx context.Context, uid string) (dto.HomeSummary, error)
	Report(ctx context.Context, uid, period string) (dto.Report, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       budgetService
	SummarySvc      summaryService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetBudget)
	r.Put("/", h.SetBudget)
	return r
}

func (h *budgetHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/home", h.Home)
	r.Get("/report", h.Report)
	return r
}

func (h *budgetHandlers) GetBudget(w http.ResponseWriter, r *http.Request) {
	resp, err := h.BudgetSvc.Get(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *budgetHandlers) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	budget, err := h.BudgetSvc.Set(r.Context(), middleware.UID(r.Context()), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

func (h *budgetHandlers) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.SummarySvc.Home(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, home)
}

func (h *budgetHandlers) Report(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	report, err := h.SummarySvc.Report(r.Context(), middleware.UID(r.Context()), period)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}
