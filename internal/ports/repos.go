package ports

// Package ports defines interfaces (hexagonal ports) for persistence and
// external providers. Implementations live in internal/data and
// internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// ProfileRepository persists health profiles. Implementations are
// responsible for encrypting PII fields at rest; callers always see
// plaintext values.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, userID string, req model.UpsertProfileRequest) (*model.Profile, error)
	Delete(ctx context.Context, userID string) (bool, error)
}

// SavedItemRepository persists user bookmarks.
type SavedItemRepository interface {
	Create(ctx context.Context, userID string, req model.CreateSavedItemRequest) (*model.SavedItem, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.SavedItem, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// CacheRepository is a byte-oriented cache with TTL semantics.
// A Get miss returns (nil, nil).
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}
