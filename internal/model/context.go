package model

import "context"

// ContextManager carries the authenticated platform user id through
// request contexts.
type ContextManager interface {
	WithUserID(ctx context.Context, userID int64) context.Context
	UserID(ctx context.Context) (int64, bool)
}
