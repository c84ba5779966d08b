package context

import (
	"context"

	"github.com/autmail/maillist-server/internal/model"
)

type ctxKey int

const userIDKey ctxKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves the authenticated platform user id in
// request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// WithUserID returns a child context carrying userID.
func (m *Manager) WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID retrieves the user id set by WithUserID.
func (m *Manager) UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
