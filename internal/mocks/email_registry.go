package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// EmailRegistry is a testify mock for model.EmailRegistry.
type EmailRegistry struct {
	mock.Mock
}

func (m *EmailRegistry) Lookup(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
