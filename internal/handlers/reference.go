package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/response"
	"github.com/GregMSThompson/expense-tracker/internal/taxonomy"
)

type referenceService interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	CreateCollege(ctx context.Context, req dto.CollegeRequest) (*models.College, error)
	UpdateCollege(ctx context.Context, id string, req dto.CollegeRequest) (*models.College, error)
	DeleteCollege(ctx context.Context, id string) error
	ListCourses(ctx context.Context, collegeID string) ([]models.Course, error)
	CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

type referenceHandlers struct {
	ResponseHandler response.ResponseHandler
	ReferenceSvc    referenceService
}

func NewReferenceHandlers(deps *Deps) *referenceHandlers {
	return &referenceHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReferenceSvc:    deps.ReferenceSvc,
	}
}

func (h *referenceHandlers) CollegeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListColleges)
	r.Get("/{collegeId}/courses", h.ListCourses)
	return r
}

func (h *referenceHandlers) AdminCollegeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateCollege)
	r.Put("/{collegeId}", h.UpdateCollege)
	r.Delete("/{collegeId}", h.DeleteCollege)
	return r
}

func (h *referenceHandlers) AdminCourseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateCourse)
	r.Put("/{courseId}", h.UpdateCourse)
	r.Delete("/{courseId}", h.DeleteCourse)
	return r
}

type categoriesResponse struct {
	Personal []taxonomy.Category `json:"personal"`
	Required []string            `json:"required"`
}

func (h *referenceHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categoriesResponse{
		Personal: taxonomy.Personal(),
		Required: taxonomy.RequiredCategories(),
	})
}

func (h *referenceHandlers) ListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.ReferenceSvc.ListColleges(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, colleges)
}

func (h *referenceHandlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.ReferenceSvc.ListCourses(r.Context(), chi.URLParam(r, "collegeId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, courses)
}

func (h *referenceHandlers) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var req dto.CollegeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	college, err := h.ReferenceSvc.CreateCollege(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, college)
}

func (h *referenceHandlers) UpdateCollege(w http.ResponseWriter, r *http.Request) {
	var req dto.CollegeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	college, err := h.ReferenceSvc.UpdateCollege(r.Context(), chi.URLParam(r, "collegeId"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, college)
}

func (h *referenceHandlers) DeleteCollege(w http.ResponseWriter, r *http.Request) {
	if err := h.ReferenceSvc.DeleteCollege(r.Context(), chi.URLParam(r, "collegeId")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *referenceHandlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	course, err := h.ReferenceSvc.CreateCourse(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, course)
}

func (h *referenceHandlers) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	course, err := h.ReferenceSvc.UpdateCourse(r.Context(), chi.URLParam(r, "courseId"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, course)
}

func (h *referenceHandlers) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.ReferenceSvc.DeleteCourse(r.Context(), chi.URLParam(r, "courseId")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
