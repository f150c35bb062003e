package ports

import (
	"context"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// TopicSource searches one third-party health-information API and returns
// normalized resources. Adapters map provider-specific payloads (XML, JSON)
// into model.Resource.
type TopicSource interface {
	// Name identifies the provider (model.SourceMedlinePlus, ...).
	Name() string
	// Search returns up to limit resources for the query.
	Search(ctx context.Context, query string, limit int) ([]model.Resource, error)
}

// TipGenerator produces an actionable health tip from a plaintext profile
// summary. The underlying model service is treated as an opaque HTTP
// collaborator.
type TipGenerator interface {
	Generate(ctx context.Context, profileSummary string) (string, error)
}
