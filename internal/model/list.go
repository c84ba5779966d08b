package model

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ListStore defines persistence operations for lists.
//
// SetEntries is a raw, wholesale replace of the stored sequence; callers are
// responsible for serializing concurrent read-modify-write cycles on the
// same list id.
type ListStore interface {
	Create(ctx context.Context, title string) (int64, error)
	GetEntries(ctx context.Context, listID int64) ([]string, error)
	SetEntries(ctx context.Context, listID int64, entries []string) error
}

// List represents a named, ordered, duplicate-free collection of emails.
type List struct {
	ID        int64
	Title     string
	Entries   []string
	CreatedAt time.Time
}

// AppendResult is the outcome of an append that did not fail: the current
// entry sequence plus whether the email was already present (a no-op, not
// an error).
type AppendResult struct {
	Entries        []string
	AlreadyPresent bool
}

// EncodeEntries joins entries into the newline-separated storage form.
// Entries must not contain newline characters; that is the wire-level
// encoding contract for the entries column.
func EncodeEntries(entries []string) (string, error) {
	for _, e := range entries {
		if strings.ContainsRune(e, '\n') {
			return "", fmt.Errorf("%w: entry contains newline", ErrInvalidEntry)
		}
	}
	return strings.Join(entries, "\n"), nil
}

// DecodeEntries splits the newline-separated storage form back into the
// ordered entry sequence. An empty string decodes to an empty sequence.
func DecodeEntries(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, "\n")
}
