package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/expense-tracker/internal/handlers"
	"github.com/GregMSThompson/expense-tracker/internal/middleware"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/internal/response"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type fakeVerifier struct {
	tokens map[string]string
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	uid, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("bad token")
	}
	return &auth.Token{UID: uid, Claims: map[string]any{"email": uid + "@school.edu"}}, nil
}

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) Get(_ context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, errors.New("missing")
	}
	return u, nil
}

func newTestRouter() http.Handler {
	log := slog.New(logger.NewTestHandler(slog.LevelError))
	rh := response.New(log)

	auth := middleware.NewMiddleware(&fakeVerifier{tokens: map[string]string{
		"student-token": "s1",
		"admin-token":   "a1",
	}})
	role := middleware.NewRoleMiddleware(&fakeUsers{users: map[string]*models.User{
		"s1": {UID: "s1", Role: models.RoleStudent},
		"a1": {UID: "a1", Role: models.RoleAdmin},
	}}, rh)

	deps := &handlers.Deps{Log: log, ResponseHandler: rh}
	return NewRouter(deps, Middlewares{Auth: auth.FirebaseAuth, Admin: role.RequireAdmin})
}

func TestHealthzIsPublic(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type %q", rr.Header().Get("Content-Type"))
	}
}

func TestCategoriesRequiresToken(t *testing.T) {
	h := newTestRouter()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer student-token")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with a token, got %d", rr.Code)
	}
}

func TestAdminRoutesRejectStudents(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer student-token")
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a student, got %d", rr.Code)
	}
}
