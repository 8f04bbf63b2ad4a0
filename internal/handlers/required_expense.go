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

type requiredExpenseService interface {
	Create(ctx context.Context, adminUID string, req dto.CreateRequiredExpenseRequest) (*models.RequiredExpense, error)
	Update(ctx context.Context, id string, req dto.UpdateRequiredExpenseRequest) (*models.RequiredExpense, error)
	Delete(ctx context.Context, id string) error
	ListWithStats(ctx context.Context) ([]dto.RequiredExpenseWithStats, error)
	Payments(ctx context.Context, id string) (dto.RequiredExpensePayments, error)
	ListForStudent(ctx context.Context, uid string) ([]dto.StudentRequiredExpense, error)
	MarkPaid(ctx context.Context, uid, email, id string) (*models.Payment, error)
}

type requiredExpenseHandlers struct {
	ResponseHandler    response.ResponseHandler
	RequiredExpenseSvc requiredExpenseService
}

func NewRequiredExpenseHandlers(deps *Deps) *requiredExpenseHandlers {
	return &requiredExpenseHandlers{
		ResponseHandler:    deps.ResponseHandler,
		RequiredExpenseSvc: deps.RequiredExpenseSvc,
	}
}

// StudentRoutes is mounted at /required-expenses.
func (h *requiredExpenseHandlers) StudentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListForStudent)
	r.Post("/{requiredExpenseId}/pay", h.Pay)
	return r
}

// AdminRoutes is mounted at /admin/required-expenses.
func (h *requiredExpenseHandlers) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListWithStats)
	r.Post("/", h.Create)
	r.Put("/{requiredExpenseId}", h.Update)
	r.Delete("/{requiredExpenseId}", h.Delete)
	r.Get("/{requiredExpenseId}/payments", h.Payments)
	return r
}

func (h *requiredExpenseHandlers) ListForStudent(w http.ResponseWriter, r *http.Request) {
	items, err := h.RequiredExpenseSvc.ListForStudent(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *requiredExpenseHandlers) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requiredExpenseId")
	ctx := r.Context()
	payment, err := h.RequiredExpenseSvc.MarkPaid(ctx, middleware.UID(ctx), middleware.Email(ctx), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, payment)
}

func (h *requiredExpenseHandlers) ListWithStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.RequiredExpenseSvc.ListWithStats(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *requiredExpenseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequiredExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	item, err := h.RequiredExpenseSvc.Create(r.Context(), middleware.UID(r.Context()), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, item)
}

func (h *requiredExpenseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requiredExpenseId")
	var req dto.UpdateRequiredExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	item, err := h.RequiredExpenseSvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, item)
}

func (h *requiredExpenseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requiredExpenseId")
	if err := h.RequiredExpenseSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *requiredExpenseHandlers) Payments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requiredExpenseId")
	view, err := h.RequiredExpenseSvc.Payments(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}
