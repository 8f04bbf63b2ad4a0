package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type stubUserService struct {
	called     bool
	uid, email string
	req        dto.RegisterRequest
	user       *models.User
	students   []models.User
	deleted    string
	err        error
}

func (s *stubUserService) Register(_ context.Context, uid, email string, req dto.RegisterRequest) (*models.User, error) {
	s.called = true
	s.uid = uid
	s.email = email
	s.req = req
	return s.user, s.err
}

func (s *stubUserService) Get(_ context.Context, uid string) (*models.User, error) {
	s.uid = uid
	return s.user, s.err
}

func (s *stubUserService) UpdateProfile(_ context.Context, uid string, _ dto.UpdateProfileRequest) (*models.User, error) {
	s.uid = uid
	return s.user, s.err
}

func (s *stubUserService) ListStudents(context.Context) ([]models.User, error) {
	return s.students, s.err
}

func (s *stubUserService) UpdateStudent(_ context.Context, uid string, _ dto.UpdateProfileRequest) (*models.User, error) {
	s.uid = uid
	return s.user, s.err
}

func (s *stubUserService) DeleteStudent(_ context.Context, uid string) error {
	s.deleted = uid
	return s.err
}

func TestRegisterSuccess(t *testing.T) {
	userSvc := &stubUserService{user: &models.User{UID: "uid-123"}}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	body := `{"name":"Jane Doe","studentId":"2024-0001"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req = withEmail(withUID(req, "uid-123"), "jane@example.com")
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if !userSvc.called {
		t.Fatal("expected Register to be called")
	}
	if userSvc.uid != "uid-123" || userSvc.email != "jane@example.com" {
		t.Fatalf("unexpected identity uid=%q email=%q", userSvc.uid, userSvc.email)
	}
	if userSvc.req.Name != "Jane Doe" || userSvc.req.StudentID != "2024-0001" {
		t.Fatalf("unexpected request %+v", userSvc.req)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected WriteSuccess with 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
}

func TestRegisterInvalidJSON(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{`))
	h.Register(httptest.NewRecorder(), withUID(req, "uid"))

	if userSvc.called {
		t.Fatal("service must not be called on a bad body")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
}

func TestRegisterServiceError(t *testing.T) {
	userSvc := &stubUserService{err: errors.New("boom")}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"x"}`))
	h.Register(httptest.NewRecorder(), withUID(req, "uid"))

	if !resp.handleErrorCalled || resp.writeSuccessCalled {
		t.Fatal("expected HandleError only")
	}
}

func TestMe(t *testing.T) {
	userSvc := &stubUserService{user: &models.User{UID: "uid-1"}}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: userSvc})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	h.Me(httptest.NewRecorder(), withUID(req, "uid-1"))

	if userSvc.uid != "uid-1" || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("unexpected call uid=%q status=%d", userSvc.uid, resp.writeSuccessStatus)
	}
}
