package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autmail/maillist-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Save upserts the user's email. Re-registration overwrites the previous
// email in place, last write wins.
func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	query := `INSERT INTO users (id, email, updated_at) VALUES ($1, $2, now())
			  ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, user.ID, user.Email); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, email, updated_at FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
