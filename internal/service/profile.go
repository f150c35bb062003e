package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/data"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/ports"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Profiles ports.ProfileRepository // Required: profile repository
	Logger   *slog.Logger            // Optional: structured logger
}

// ProfileService manages health profiles.
type ProfileService struct {
	profiles ports.ProfileRepository
	logger   *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) (*ProfileService, error) {
	if opts.Profiles == nil {
		return nil, errors.New("ProfileRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "profile_service")
	}

	return &ProfileService{profiles: opts.Profiles, logger: logger}, nil
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, data.ErrProfileNotFound) {
		return nil, apperrors.NotFound("Profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Upsert validates and stores the user's profile.
func (s *ProfileService) Upsert(ctx context.Context, userID string, req model.UpsertProfileRequest) (*model.Profile, error) {
	if err := validateProfile(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Upsert(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "profile saved", "user_id", userID)
	}
	return profile, nil
}

// Delete removes the user's profile.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	deleted, err := s.profiles.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Profile not found")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "profile deleted", "user_id", userID)
	}
	return nil
}

func validateProfile(req model.UpsertProfileRequest) error {
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return apperrors.ValidationField("dateOfBirth", "Date of birth must be YYYY-MM-DD")
		}
		if dob.After(time.Now()) {
			return apperrors.ValidationField("dateOfBirth", "Date of birth must be in the past")
		}
	}
	if req.HeightCm < 0 || req.HeightCm > 300 {
		return apperrors.ValidationField("heightCm", "Height must be between 0 and 300 cm")
	}
	if req.WeightKg < 0 || req.WeightKg > 700 {
		return apperrors.ValidationField("weightKg", "Weight must be between 0 and 700 kg")
	}
	return nil
}
