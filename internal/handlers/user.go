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

type UserService interface {
	Register(ctx context.Context, uid, email string, req dto.RegisterRequest) (*models.User, error)
	Get(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error)
	ListStudents(ctx context.Context) ([]models.User, error)
	UpdateStudent(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error)
	DeleteStudent(ctx context.Context, uid string) error
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateMe)
	return r
}

func (h *userHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	email := middleware.Email(r.Context())
	user, err := h.UserSvc.Register(r.Context(), uid, email, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, user)
}

func (h *userHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserSvc.Get(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	user, err := h.UserSvc.UpdateProfile(r.Context(), middleware.UID(r.Context()), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}
