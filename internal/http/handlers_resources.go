package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// ResourceServiceInterface defines the resource search operation.
type ResourceServiceInterface interface {
	Search(ctx context.Context, query string, limit int) ([]model.Resource, error)
}

// ResourceHandlers provides HTTP handlers for health resource search.
type ResourceHandlers struct {
	Svc ResourceServiceInterface
}

// Search handles GET /api/resources?q=<query>&limit=<n>.
func (h *ResourceHandlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resources, err := h.Svc.Search(r.Context(), query, limit)
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"resources": resources})
}
