package mocks

import (
	"github.com/stretchr/testify/mock"
)

// EmailValidator is a testify mock for model.EmailValidator.
type EmailValidator struct {
	mock.Mock
}

func (m *EmailValidator) Normalize(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}
