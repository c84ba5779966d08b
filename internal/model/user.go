package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for registered users.
type UserStore interface {
	Save(ctx context.Context, user User) error
	GetByID(ctx context.Context, id int64) (User, error)
}

// User represents a platform user with their registered email.
// The ID comes from the external chat platform; at most one email is kept
// per user, re-registration overwrites it in place.
type User struct {
	ID        int64
	Email     string
	UpdatedAt time.Time
}

// EmailValidator validates a raw email string and returns its normalized form.
type EmailValidator interface {
	Normalize(raw string) (string, error)
}

// EmailRegistry resolves a user's registered email.
type EmailRegistry interface {
	Lookup(ctx context.Context, userID int64) (string, error)
}
