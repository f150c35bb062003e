package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/ports"
)

const (
	defaultResourceLimit = 5
	maxResourceLimit     = 20
	resourceCachePrefix  = "resources:"
)

// ResourceServiceOptions groups dependencies for ResourceService.
type ResourceServiceOptions struct {
	Sources  []ports.TopicSource   // Required: at least one provider
	Cache    ports.CacheRepository // Optional: response cache
	CacheTTL time.Duration         // TTL for cached responses; defaults to 1h
	Logger   *slog.Logger          // Optional: structured logger
}

// ResourceService fans a query out to external health-information providers
// and merges the normalized results. Provider failures degrade the response
// instead of failing it; only when every provider fails is an error returned.
type ResourceService struct {
	sources  []ports.TopicSource
	cache    ports.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewResourceService constructs a new ResourceService.
func NewResourceService(opts ResourceServiceOptions) (*ResourceService, error) {
	if len(opts.Sources) == 0 {
		return nil, errors.New("at least one TopicSource is required")
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "resource_service")
	}

	return &ResourceService{
		sources:  opts.Sources,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}, nil
}

// Search returns resources for the query, merged across providers in
// provider order. Results are cached per query+limit.
func (s *ResourceService) Search(ctx context.Context, query string, limit int) ([]model.Resource, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ValidationField("q", "Query is required")
	}
	if limit <= 0 {
		limit = defaultResourceLimit
	}
	if limit > maxResourceLimit {
		limit = maxResourceLimit
	}

	cacheKey := resourceCacheKey(query, limit)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	// One slot per provider keeps the merge order deterministic no matter
	// which goroutine finishes first.
	results := make([][]model.Resource, len(s.sources))
	failures := make([]error, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			resources, err := src.Search(gctx, query, limit)
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", src.Name(), err)
				if s.logger != nil {
					s.logger.WarnContext(gctx, "provider search failed",
						"provider", src.Name(), "error", err)
				}
				return nil
			}
			results[i] = resources
			return nil
		})
	}
	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	merged := make([]model.Resource, 0, limit*len(s.sources))
	for i := range s.sources {
		if failures[i] != nil {
			failed++
			continue
		}
		merged = append(merged, results[i]...)
	}
	if failed == len(s.sources) {
		return nil, apperrors.Wrap(errors.Join(failures...),
			apperrors.ErrCodeUnavailable, "All resource providers failed")
	}

	s.cacheSet(ctx, cacheKey, merged)
	return merged, nil
}

func resourceCacheKey(query string, limit int) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d", strings.ToLower(query), limit))
	return resourceCachePrefix + hex.EncodeToString(sum[:16])
}

func (s *ResourceService) cacheGet(ctx context.Context, key string) ([]model.Resource, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "resource cache read failed", "error", err)
		}
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var resources []model.Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, false
	}
	return resources, true
}

func (s *ResourceService) cacheSet(ctx context.Context, key string, resources []model.Resource) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(resources)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "resource cache write failed", "error", err)
	}
}
