package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/vitaltrack/vitaltrack/internal/domain/auth"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/security"
)

// stubAuthService is a hand-rolled double for AuthServiceInterface; function
// fields keep each test's behavior next to its assertions.
type stubAuthService struct {
	register       func(ctx context.Context, email, password string) (*model.User, string, error)
	login          func(ctx context.Context, email, password string) (*model.User, string, error)
	changePassword func(ctx context.Context, userID, current, next string) error
	issueToken     func(userID string) (string, error)
	getUser        func(ctx context.Context, userID string) (*model.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.register(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePassword(ctx, userID, current, next)
}

func (s *stubAuthService) IssueToken(userID string) (string, error) {
	return s.issueToken(userID)
}

func (s *stubAuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.getUser(ctx, userID)
}

func testCookiePolicy() CookiePolicy {
	return CookiePolicy{Name: "vt_session", TTL: 168 * time.Hour}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "vt_session" {
			return c
		}
	}
	t.Fatal("vt_session cookie not set")
	return nil
}

func TestAuthHandlers_Register(t *testing.T) {
	svc := &stubAuthService{
		register: func(_ context.Context, email, password string) (*model.User, string, error) {
			assert.Equal(t, "alice@example.com", email)
			return &model.User{ID: "u1", Email: email}, "issued-token", nil
		},
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"alice@example.com","password":"long enough password"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	// PasswordHash is never serialized.
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := sessionCookie(t, rec)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((168 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandlers_Register_FieldErrors(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthService{}, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"nope","password":"short"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"errors"`)
	assert.Contains(t, body, `"email"`)
	assert.Contains(t, body, `"password"`)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandlers_Register_Conflict(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", apperrors.Conflict("Email already registered")
		},
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"alice@example.com","password":"long enough password"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
}

func TestAuthHandlers_Login(t *testing.T) {
	svc := &stubAuthService{
		login: func(_ context.Context, email, password string) (*model.User, string, error) {
			return &model.User{ID: "u1", Email: email}, "issued-token", nil
		},
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"long enough password"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"issued-token"`)
	assert.Equal(t, "issued-token", sessionCookie(t, rec).Value)
}

func TestAuthHandlers_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", apperrors.Unauthorized(domainauth.MsgInvalidCredentials)
		},
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"wrong password!"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandlers_Logout_ClearsCookie(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuthService{}, Cookies: testCookiePolicy()}

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandlers_ChangePassword_ReissuesCookie(t *testing.T) {
	svc := &stubAuthService{
		changePassword: func(_ context.Context, userID, current, next string) error {
			assert.Equal(t, "u1", userID)
			return nil
		},
		issueToken: func(userID string) (string, error) { return "fresh-token", nil },
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPut, "/api/auth/password",
		strings.NewReader(`{"currentPassword":"old password!","newPassword":"brand new password"}`))
	req = req.WithContext(SetIdentityInContext(req.Context(), domainauth.Identity{UserID: "u1"}))
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh-token", sessionCookie(t, rec).Value)
}

func TestAuthHandlers_ChangePassword_SameAsCurrent(t *testing.T) {
	svc := &stubAuthService{
		changePassword: func(context.Context, string, string, string) error {
			return apperrors.ValidationField("newPassword", "New password must differ from the current password")
		},
	}
	h := &AuthHandlers{Svc: svc, Cookies: testCookiePolicy()}

	req := httptest.NewRequest(http.MethodPut, "/api/auth/password",
		strings.NewReader(`{"currentPassword":"same password!!","newPassword":"same password!!"}`))
	req = req.WithContext(SetIdentityInContext(req.Context(), domainauth.Identity{UserID: "u1"}))
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"newPassword"`)
}

func TestAuthHandlers_Me(t *testing.T) {
	tokens, err := security.NewTokenService("me-handler-test-secret", time.Hour)
	require.NoError(t, err)

	svc := &stubAuthService{
		getUser: func(_ context.Context, userID string) (*model.User, error) {
			return &model.User{ID: userID, Email: "alice@example.com"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc, Verifier: tokens, Cookies: testCookiePolicy()}

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
	})

	t.Run("invalid cookie is cleared", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "vt_session", Value: "garbage"})
		rec := httptest.NewRecorder()
		h.Me(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
		assert.Negative(t, sessionCookie(t, rec).MaxAge)
	})

	t.Run("valid session", func(t *testing.T) {
		token, err := tokens.Issue("u1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "vt_session", Value: token})
		rec := httptest.NewRecorder()
		h.Me(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":true`)
		assert.Contains(t, rec.Body.String(), `"alice@example.com"`)
	})
}
