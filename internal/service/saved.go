package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/ports"
)

// SavedItemServiceOptions groups dependencies for SavedItemService.
type SavedItemServiceOptions struct {
	Items  ports.SavedItemRepository // Required: saved item repository
	Logger *slog.Logger              // Optional: structured logger
}

// SavedItemService manages user bookmarks.
type SavedItemService struct {
	items  ports.SavedItemRepository
	logger *slog.Logger
}

// NewSavedItemService constructs a new SavedItemService.
func NewSavedItemService(opts SavedItemServiceOptions) (*SavedItemService, error) {
	if opts.Items == nil {
		return nil, errors.New("SavedItemRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "saved_item_service")
	}

	return &SavedItemService{items: opts.Items, logger: logger}, nil
}

// Create bookmarks a tip or resource for the user.
func (s *SavedItemService) Create(ctx context.Context, userID string, req model.CreateSavedItemRequest) (*model.SavedItem, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	item, err := s.items.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("create saved item: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "item saved", "user_id", userID, "kind", item.Kind)
	}
	return item, nil
}

// List returns a page of the user's bookmarks, newest first.
func (s *SavedItemService) List(ctx context.Context, userID string, limit, offset int) ([]model.SavedItem, error) {
	items, err := s.items.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saved items: %w", err)
	}
	return items, nil
}

// Delete removes one of the user's bookmarks.
func (s *SavedItemService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.items.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete saved item: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Saved item not found")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "item deleted", "user_id", userID, "id", id)
	}
	return nil
}
