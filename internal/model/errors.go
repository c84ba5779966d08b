package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotRegistered is returned when a user has no registered email.
	ErrNotRegistered = errors.New("email not registered")

	// ErrInvalidEmail is returned when an email address fails validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidEntry is returned when a list entry violates the storage
	// encoding contract.
	ErrInvalidEntry = errors.New("invalid list entry")
)
