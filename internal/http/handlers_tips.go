package httpx

import (
	"context"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// TipServiceInterface defines the tip operations the handlers need.
type TipServiceInterface interface {
	GetDailyTip(ctx context.Context, userID string) (*model.Tip, error)
	Refresh(ctx context.Context, userID string) error
}

// TipHandlers provides HTTP handlers for wellness tips.
type TipHandlers struct {
	Svc TipServiceInterface
}

// Daily handles GET /api/tips/daily.
func (h *TipHandlers) Daily(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	tip, err := h.Svc.GetDailyTip(r.Context(), identity.UserID)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tip)
}

// Refresh handles POST /api/tips/refresh. It drops the cached tip so the
// next daily-tip request generates a fresh one.
func (h *TipHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	if err := h.Svc.Refresh(r.Context(), identity.UserID); err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
