package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vitaltrack/vitaltrack/internal/data/pgxutil"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

const (
	defaultSavedItemLimit = 50
	maxSavedItemLimit     = 200
)

// SavedItemRepo provides CRUD operations for user bookmarks.
type SavedItemRepo struct {
	DB *sql.DB
}

// NewSavedItemRepo creates a new SavedItemRepo.
func NewSavedItemRepo(db *sql.DB) *SavedItemRepo {
	return &SavedItemRepo{DB: db}
}

const savedItemColumns = `id, user_id, kind, title, body, url, created_at`

// Create inserts a bookmark for userID.
func (r *SavedItemRepo) Create(ctx context.Context, userID string, req model.CreateSavedItemRequest) (*model.SavedItem, error) {
	var item model.SavedItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO saved_items (id, user_id, kind, title, body, url)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+savedItemColumns,
			uuid.New().String(), userID, req.Kind, req.Title, req.Body, req.URL)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		item, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SavedItem])
		return qerr
	})
	if err != nil {
		return nil, fmt.Errorf("create saved item: %w", err)
	}
	return &item, nil
}

// ListByUser returns a page of the user's bookmarks, newest first.
func (r *SavedItemRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.SavedItem, error) {
	if limit <= 0 {
		limit = defaultSavedItemLimit
	}
	if limit > maxSavedItemLimit {
		limit = maxSavedItemLimit
	}
	if offset < 0 {
		offset = 0
	}

	var items []model.SavedItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+savedItemColumns+` FROM saved_items
			 WHERE user_id = $1 ORDER BY created_at DESC
			 LIMIT $2 OFFSET $3`, userID, limit, offset)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		items, qerr = pgx.CollectRows(rows, pgx.RowToStructByName[model.SavedItem])
		return qerr
	})
	if err != nil {
		return nil, fmt.Errorf("list saved items: %w", err)
	}
	if items == nil {
		items = []model.SavedItem{}
	}
	return items, nil
}

// Delete removes the bookmark with id owned by userID. The ownership filter
// keeps one user from deleting another's bookmarks. Returns false when no
// matching row existed.
func (r *SavedItemRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete saved item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete saved item rows affected: %w", err)
	}
	return n > 0, nil
}
