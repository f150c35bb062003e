package model

import (
	"fmt"
	"time"
)

// SavedItemKind distinguishes bookmarked tips from bookmarked resources.
type SavedItemKind string

const (
	SavedItemTip      SavedItemKind = "tip"
	SavedItemResource SavedItemKind = "resource"
)

// SavedItem is a user bookmark for a tip or an external resource.
type SavedItem struct {
	ID        string        `db:"id"         json:"id"`
	UserID    string        `db:"user_id"    json:"userId"`
	Kind      SavedItemKind `db:"kind"       json:"kind"`
	Title     string        `db:"title"      json:"title"`
	Body      string        `db:"body"       json:"body,omitempty"`
	URL       string        `db:"url"        json:"url,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

// CreateSavedItemRequest carries the writable bookmark fields.
type CreateSavedItemRequest struct {
	Kind  SavedItemKind `json:"kind"`
	Title string        `json:"title"`
	Body  string        `json:"body"`
	URL   string        `json:"url"`
}

// Validate checks structural constraints on the request.
func (r CreateSavedItemRequest) Validate() error {
	switch r.Kind {
	case SavedItemTip, SavedItemResource:
	default:
		return fmt.Errorf("invalid kind %q", r.Kind)
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
