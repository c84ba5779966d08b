// Package cache decorates the user store with a write-through redis cache
// for email lookups, the hot path of every button press.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

const emailTTL = 24 * time.Hour

var _ model.UserStore = (*UserStore)(nil)

// UserStore caches User.Email in redis in front of another model.UserStore.
// Writes go through to the store first and then refresh the cache, so a
// re-registration is visible immediately. Cache failures degrade to the
// underlying store and are only logged.
type UserStore struct {
	store  model.UserStore
	rdb    *redis.Client
	logger *logger.Logger
}

func NewUserStore(store model.UserStore, rdb *redis.Client, logger *logger.Logger) *UserStore {
	return &UserStore{
		store:  store,
		rdb:    rdb,
		logger: logger,
	}
}

func emailKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10) + ":email"
}

func (s *UserStore) Save(ctx context.Context, user model.User) error {
	if err := s.store.Save(ctx, user); err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, emailKey(user.ID), user.Email, emailTTL).Err(); err != nil {
		s.logger.Warn("failed to cache user email", "user_id", user.ID, "error", err)
	}

	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	email, err := s.rdb.Get(ctx, emailKey(id)).Result()
	if err == nil {
		return model.User{ID: id, Email: email}, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("failed to read user email from cache", "user_id", id, "error", err)
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		// Negative results are not cached: model.ErrNotFound stays cheap to
		// recompute and must clear instantly once the user registers.
		return model.User{}, err
	}

	if err := s.rdb.Set(ctx, emailKey(id), user.Email, emailTTL).Err(); err != nil {
		s.logger.Warn("failed to cache user email", "user_id", id, "error", err)
	}

	return user, nil
}

// Ping reports whether the cache backend is reachable.
func (s *UserStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
