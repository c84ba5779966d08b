package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autmail/maillist-server/internal/model"
)

var _ model.ListStore = (*ListRepository)(nil)

type ListRepository struct {
	db DB
}

func NewListRepository(db DB) *ListRepository {
	return &ListRepository{
		db: db,
	}
}

// Create allocates a fresh list id and stores the title with an empty
// entry sequence. Ids are assigned by the lists sequence, strictly
// increasing and never reused.
func (r *ListRepository) Create(ctx context.Context, title string) (int64, error) {
	var id int64
	query := `INSERT INTO lists (title, entries) VALUES ($1, '') RETURNING id`

	if err := r.db.QueryRow(ctx, query, title).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create list: %w", err)
	}

	return id, nil
}

func (r *ListRepository) GetEntries(ctx context.Context, listID int64) ([]string, error) {
	var raw string
	query := `SELECT entries FROM lists WHERE id = $1`

	err := r.db.QueryRow(ctx, query, listID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list entries: %w", err)
	}

	return model.DecodeEntries(raw), nil
}

// SetEntries replaces the stored sequence wholesale with a single UPDATE.
// The write itself is blind; serializing concurrent appends to one list is
// the caller's responsibility.
func (r *ListRepository) SetEntries(ctx context.Context, listID int64, entries []string) error {
	raw, err := model.EncodeEntries(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	query := `UPDATE lists SET entries = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, raw, listID)
	if err != nil {
		return fmt.Errorf("failed to set list entries: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
