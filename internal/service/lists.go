package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/autmail/maillist-server/internal/keymutex"
	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

// Lists appends registered emails to lists. All appends to one list are
// serialized through a per-list mutex, so the read-modify-write against
// the store never loses an update; unrelated lists proceed in parallel.
//
// The serialization is in-process only. If the store ever gets a second
// writer process, the per-list mutex has to become a distributed lock or
// SetEntries a conditional update.
type Lists struct {
	lists    model.ListStore
	registry model.EmailRegistry
	locks    *keymutex.KeyedMutex
	logger   *logger.Logger
}

func NewLists(
	lists model.ListStore,
	registry model.EmailRegistry,
	logger *logger.Logger,
) *Lists {
	return &Lists{
		lists:    lists,
		registry: registry,
		locks:    keymutex.New(),
		logger:   logger,
	}
}

// CreateList stores a new empty list and returns its id. Creation needs no
// locking: each call yields a fresh, not-yet-contended id.
func (s *Lists) CreateList(ctx context.Context, title string) (int64, error) {
	id, err := s.lists.Create(ctx, title)
	if err != nil {
		return 0, fmt.Errorf("failed to create list: %w", err)
	}

	s.logger.Info("list created", "list_id", id, "title", title)

	return id, nil
}

// Append resolves the user's registered email and appends it to the list.
//
// Returns model.ErrNotRegistered if the user has no email (nothing is
// mutated), model.ErrNotFound if the list id is unknown. An email that is
// already present is not an error: the unchanged entries come back with
// AlreadyPresent set. If ctx is done before the list's turn is granted,
// the append is abandoned without any read or write.
func (s *Lists) Append(ctx context.Context, userID, listID int64) (model.AppendResult, error) {
	email, err := s.registry.Lookup(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotRegistered) {
			return model.AppendResult{}, model.ErrNotRegistered
		}
		return model.AppendResult{}, fmt.Errorf("failed to resolve email: %w", err)
	}

	unlock, err := s.locks.Lock(ctx, listID)
	if err != nil {
		return model.AppendResult{}, fmt.Errorf("failed to acquire list lock: %w", err)
	}
	defer unlock()

	entries, err := s.lists.GetEntries(ctx, listID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AppendResult{}, model.ErrNotFound
		}
		return model.AppendResult{}, fmt.Errorf("failed to get list entries: %w", err)
	}

	if slices.Contains(entries, email) {
		return model.AppendResult{Entries: entries, AlreadyPresent: true}, nil
	}

	entries = append(entries, email)
	if err := s.lists.SetEntries(ctx, listID, entries); err != nil {
		return model.AppendResult{}, fmt.Errorf("failed to set list entries: %w", err)
	}

	s.logger.Info("entry appended", "list_id", listID, "user_id", userID, "size", len(entries))

	return model.AppendResult{Entries: entries}, nil
}

// Entries returns the current entry sequence for re-rendering.
func (s *Lists) Entries(ctx context.Context, listID int64) ([]string, error) {
	entries, err := s.lists.GetEntries(ctx, listID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list entries: %w", err)
	}

	return entries, nil
}
