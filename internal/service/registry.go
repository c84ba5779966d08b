package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

var _ model.EmailRegistry = (*Registry)(nil)

// Registry maps platform users to their most recently registered email.
type Registry struct {
	users     model.UserStore
	validator model.EmailValidator
	logger    *logger.Logger
}

func NewRegistry(
	users model.UserStore,
	validator model.EmailValidator,
	logger *logger.Logger,
) *Registry {
	return &Registry{
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

// Register validates and normalizes email, then stores it for the user.
// A previously registered email is overwritten, last write wins. Returns
// the normalized form that was stored.
func (s *Registry) Register(ctx context.Context, userID int64, email string) (string, error) {
	normalized, err := s.validator.Normalize(email)
	if err != nil {
		return "", fmt.Errorf("failed to validate email: %w", err)
	}

	if err := s.users.Save(ctx, model.User{ID: userID, Email: normalized}); err != nil {
		return "", fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("email registered", "user_id", userID)

	return normalized, nil
}

// Lookup returns the user's registered email, or model.ErrNotRegistered if
// the user never registered one. An absent email is never reported as an
// empty string.
func (s *Registry) Lookup(ctx context.Context, userID int64) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrNotRegistered
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Email, nil
}
