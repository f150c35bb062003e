package httpx

import (
	"context"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// ProfileServiceInterface defines the profile operations the handlers need.
type ProfileServiceInterface interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, userID string, req model.UpsertProfileRequest) (*model.Profile, error)
	Delete(ctx context.Context, userID string) error
}

// ProfileHandlers provides HTTP handlers for health profile operations.
// All routes sit behind RequireAuth.
type ProfileHandlers struct {
	Svc ProfileServiceInterface
}

// Get handles GET /api/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	profile, err := h.Svc.Get(r.Context(), identity.UserID)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Put handles PUT /api/profile.
func (h *ProfileHandlers) Put(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	var req model.UpsertProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.Upsert(r.Context(), identity.UserID, req)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /api/profile.
func (h *ProfileHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	if err := h.Svc.Delete(r.Context(), identity.UserID); err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
