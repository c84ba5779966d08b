package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ListStore is a testify mock for model.ListStore.
type ListStore struct {
	mock.Mock
}

func (m *ListStore) Create(ctx context.Context, title string) (int64, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ListStore) GetEntries(ctx context.Context, listID int64) ([]string, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ListStore) SetEntries(ctx context.Context, listID int64, entries []string) error {
	args := m.Called(ctx, listID, entries)
	return args.Error(0)
}
