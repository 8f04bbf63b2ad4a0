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

type expenseService interface {
	List(ctx context.Context, uid string, q dto.ExpenseQuery) ([]models.Expense, error)
	Create(ctx context.Context, uid string, req dto.CreateExpenseRequest) (*models.Expense, error)
	Get(ctx context.Context, uid, expenseID string) (*models.Expense, error)
	Update(ctx context.Context, uid, expenseID string, req dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, uid, expenseID string) error
}

type expenseHandlers struct {
	ResponseHandler response.ResponseHandler
	ExpenseSvc      expenseService
}

func NewExpenseHandlers(deps *Deps) *expenseHandlers {
	return &expenseHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExpenseSvc:      deps.ExpenseSvc,
	}
}

func (h *expenseHandlers) ExpenseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{expenseId}", h.Get)
	r.Put("/{expenseId}", h.Update)
	r.Delete("/{expenseId}", h.Delete)
	return r
}

func (h *expenseHandlers) List(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "from", false)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	to, err := queryTime(r, "to", true)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	expenses, err := h.ExpenseSvc.List(r.Context(), uid, dto.ExpenseQuery{From: from, To: to})
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expenses)
}

func (h *expenseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, expense)
}

func (h *expenseHandlers) Get(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Get(r.Context(), uid, expenseID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	var req dto.UpdateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Update(r.Context(), uid, expenseID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	uid := middleware.UID(r.Context())
	if err := h.ExpenseSvc.Delete(r.Context(), uid, expenseID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
