package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openlance/marketplace-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, jti string, expiresAt time.Time) error
}

func (s *stubAuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.logoutFn(ctx, jti, expiresAt)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, password string, role domain.Role) (*domain.User, error) {
			if username != "alice" || password != "secret" || role != domain.RoleClient {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{ID: "user_1", Username: username, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secret","role":"client"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_BadRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secret","role":"admin"}`)

	err := handler.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", "not-json")

	err := handler.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","password":"pw","role":"freelancer"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_SuccessSetsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("expected auth cookie to be set")
	}
	if cookie.Value != "token123" {
		t.Fatalf("unexpected cookie value: %s", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("expected HttpOnly cookie")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"bad"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")

	err := handler.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesAndClearsCookie(t *testing.T) {
	var gotJTI string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, jti string, _ time.Time) error {
			gotJTI = jti
			return nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "user_1")
	c.Set("username", "alice")
	c.Set("role", "client")
	c.Set("jti", "jti_1")
	c.Set("token_exp", time.Now().Add(time.Hour))

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotJTI != "jti_1" {
		t.Fatalf("expected jti_1 revoked, got %q", gotJTI)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared auth cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(context.Context, string, time.Time) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/auth/logout", "")

	err := handler.Logout(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
