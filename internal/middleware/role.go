package middleware

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/response"
)

type userLookup interface {
	Get(ctx context.Context, uid string) (*models.User, error)
}

type roleMiddleware struct {
	Users userLookup
	Resp  response.ResponseHandler
}

func NewRoleMiddleware(users userLookup, resp response.ResponseHandler) *roleMiddleware {
	return &roleMiddleware{Users: users, Resp: resp}
}

// RequireAdmin must run after FirebaseAuth.
func (m *roleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.Users.Get(r.Context(), UID(r.Context()))
		if err != nil {
			m.Resp.HandleError(w, r, err)
			return
		}
		if !user.IsAdmin() {
			m.Resp.HandleError(w, r, errs.NewForbiddenError("admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
