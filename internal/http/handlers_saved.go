package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// SavedItemServiceInterface defines the bookmark operations the handlers need.
type SavedItemServiceInterface interface {
	Create(ctx context.Context, userID string, req model.CreateSavedItemRequest) (*model.SavedItem, error)
	List(ctx context.Context, userID string, limit, offset int) ([]model.SavedItem, error)
	Delete(ctx context.Context, userID, id string) error
}

// SavedItemHandlers provides HTTP handlers for bookmarks.
type SavedItemHandlers struct {
	Svc SavedItemServiceInterface
}

// Create handles POST /api/saved.
func (h *SavedItemHandlers) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	var req model.CreateSavedItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Create(r.Context(), identity.UserID, req)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

// List handles GET /api/saved?limit=<n>&offset=<n>.
func (h *SavedItemHandlers) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.Svc.List(r.Context(), identity.UserID, limit, offset)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Delete handles DELETE /api/saved/{id}.
func (h *SavedItemHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	if err := h.Svc.Delete(r.Context(), identity.UserID, r.PathValue("id")); err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
