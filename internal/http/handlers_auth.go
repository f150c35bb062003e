package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	"github.com/vitaltrack/vitaltrack/internal/http/validation"
)

// AuthServiceInterface defines the auth operations the handlers need.
type AuthServiceInterface interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	IssueToken(userID string) (string, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc      AuthServiceInterface
	Verifier TokenVerifier
	Cookies  CookiePolicy
	Logger   *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateCredentials(req credentialsRequest) map[string][]string {
	return validation.New().
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.RequiredRange("Password", 8, 72)).
		Errors()
}

// Register handles POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := validateCredentials(req); fieldErrors != nil {
		WriteFieldErrors(w, fieldErrors)
		return
	}

	user, token, err := h.Svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		RenderError(w, err)
		return
	}

	http.SetCookie(w, h.Cookies.Session(token))
	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    user.Public(),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := validateCredentials(req); fieldErrors != nil {
		WriteFieldErrors(w, fieldErrors)
		return
	}

	user, token, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RenderError(w, err)
		return
	}

	http.SetCookie(w, h.Cookies.Session(token))
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user.Public(),
		"token":   token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout
// clears the cookie client-side; the token itself stays valid until expiry.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.Cookies.Clear())
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out",
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles PUT /api/auth/password. On success the session
// cookie is re-issued with a full new lifetime.
func (h *AuthHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req changePasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	fieldErrors := validation.New().
		Validate("currentPassword", req.CurrentPassword, validation.Required("Current password", 72)).
		Validate("newPassword", req.NewPassword, validation.RequiredRange("New password", 8, 72)).
		Errors()
	if fieldErrors != nil {
		WriteFieldErrors(w, fieldErrors)
		return
	}

	if err := h.Svc.ChangePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		RenderError(w, err)
		return
	}

	token, err := h.Svc.IssueToken(identity.UserID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "token re-issue failed", "error", err)
		RenderError(w, err)
		return
	}

	http.SetCookie(w, h.Cookies.Session(token))
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Password updated",
	})
}

// Me handles GET /api/auth/me. It reports session status without requiring
// authentication; an invalid cookie is cleared rather than rejected.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cookies.Name)
	if err != nil || cookie.Value == "" {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	identity, err := h.Verifier.Verify(cookie.Value)
	if err != nil {
		http.SetCookie(w, h.Cookies.Clear())
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user, err := h.Svc.GetUser(r.Context(), identity.UserID)
	if err != nil {
		// Token verified but the account is gone; treat as signed out.
		http.SetCookie(w, h.Cookies.Clear())
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          user.Public(),
		"expiresAt":     identity.ExpiresAt,
	})
}
