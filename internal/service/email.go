package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/autmail/maillist-server/internal/model"
)

var _ model.EmailValidator = AddressValidator{}

// AddressValidator validates emails with net/mail and lowercases the
// domain part. The local part is kept as-is: dedup inside lists is
// case-sensitive on the normalized string.
type AddressValidator struct{}

func NewAddressValidator() AddressValidator {
	return AddressValidator{}
}

func (AddressValidator) Normalize(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidEmail, err)
	}

	email := addr.Address
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", fmt.Errorf("%w: missing domain", model.ErrInvalidEmail)
	}

	return email[:at+1] + strings.ToLower(email[at+1:]), nil
}
