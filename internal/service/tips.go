package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/data"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/ports"
)

const tipCachePrefix = "tip:"

// TipServiceOptions groups dependencies for TipService.
type TipServiceOptions struct {
	Profiles  ports.ProfileRepository // Required: profile repository
	Generator ports.TipGenerator      // Required: tip generator
	Cache     ports.CacheRepository   // Optional: tip cache
	CacheTTL  time.Duration           // TTL for cached tips; defaults to 24h
	Logger    *slog.Logger            // Optional: structured logger
}

// TipService produces personalized wellness tips. Generated tips are cached
// per user keyed by a fingerprint of the profile, so a profile change
// invalidates the cache naturally and an unchanged profile reuses the
// previous tip until the TTL lapses.
type TipService struct {
	profiles  ports.ProfileRepository
	generator ports.TipGenerator
	cache     ports.CacheRepository
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewTipService constructs a new TipService.
func NewTipService(opts TipServiceOptions) (*TipService, error) {
	if opts.Profiles == nil {
		return nil, errors.New("ProfileRepository is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("TipGenerator is required")
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "tip_service")
	}

	return &TipService{
		profiles:  opts.Profiles,
		generator: opts.Generator,
		cache:     opts.Cache,
		cacheTTL:  ttl,
		logger:    logger,
	}, nil
}

// GetDailyTip returns the user's current tip, generating one if the cache
// has no entry for the current profile. A missing profile is not an error;
// the generator falls back to a generic tip.
func (s *TipService) GetDailyTip(ctx context.Context, userID string) (*model.Tip, error) {
	summary := ""
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		summary = profile.Summary()
	case errors.Is(err, data.ErrProfileNotFound):
		// generic tip
	default:
		return nil, fmt.Errorf("get profile: %w", err)
	}

	cacheKey := tipCacheKey(userID, summary)
	if tip, ok := s.cacheGet(ctx, cacheKey); ok {
		tip.Cached = true
		return tip, nil
	}

	text, err := s.generator.Generate(ctx, summary)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable,
			"Tip generation is temporarily unavailable")
	}

	tip := &model.Tip{Text: text, GeneratedAt: time.Now().UTC()}
	s.cacheSet(ctx, cacheKey, tip)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "tip generated", "user_id", userID)
	}
	return tip, nil
}

// Refresh drops the cached tip for the user's current profile so the next
// request generates a fresh one.
func (s *TipService) Refresh(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}

	summary := ""
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		summary = profile.Summary()
	case errors.Is(err, data.ErrProfileNotFound):
	default:
		return fmt.Errorf("get profile: %w", err)
	}

	if _, err := s.cache.Delete(ctx, tipCacheKey(userID, summary)); err != nil {
		return fmt.Errorf("drop cached tip: %w", err)
	}
	return nil
}

// tipCacheKey fingerprints the profile summary so the key changes whenever
// the tip-relevant profile fields change.
func tipCacheKey(userID, summary string) string {
	sum := sha256.Sum256([]byte(summary))
	return tipCachePrefix + userID + ":" + hex.EncodeToString(sum[:8])
}

func (s *TipService) cacheGet(ctx context.Context, key string) (*model.Tip, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "tip cache read failed", "error", err)
		}
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var tip model.Tip
	if err := json.Unmarshal(raw, &tip); err != nil {
		return nil, false
	}
	return &tip, true
}

func (s *TipService) cacheSet(ctx context.Context, key string, tip *model.Tip) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(tip)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "tip cache write failed", "error", err)
	}
}
