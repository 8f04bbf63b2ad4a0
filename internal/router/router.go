package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/expense-tracker/internal/handlers"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
)

// Middlewares are the guards applied to the authenticated and admin
// route groups.
type Middlewares struct {
	Auth  func(http.Handler) http.Handler
	Admin func(http.Handler) http.Handler
}

func NewRouter(deps *handlers.Deps, mw Middlewares) chi.Router {
	r := chi.NewRouter()

	logMw := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(logMw.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	ush := handlers.NewUserHandlers(deps)
	exh := handlers.NewExpenseHandlers(deps)
	bgh := handlers.NewBudgetHandlers(deps)
	rqh := handlers.NewRequiredExpenseHandlers(deps)
	rfh := handlers.NewReferenceHandlers(deps)
	adh := handlers.NewAdminHandlers(deps)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Mount("/users", ush.UserRoutes())
		r.Mount("/expenses", exh.ExpenseRoutes())
		r.Mount("/budget", bgh.BudgetRoutes())
		r.Mount("/summary", bgh.SummaryRoutes())
		r.Mount("/required-expenses", rqh.StudentRoutes())
		r.Mount("/colleges", rfh.CollegeRoutes())
		r.Get("/categories", rfh.Categories)

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.Admin)

			r.Mount("/", adh.AdminRoutes())
			r.Mount("/required-expenses", rqh.AdminRoutes())
			r.Mount("/colleges", rfh.AdminCollegeRoutes())
			r.Mount("/courses", rfh.AdminCourseRoutes())
		})
	})

	return r
}
