package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail accepts anything net/mail parses as a single RFC 5322 address,
// capped at the RFC 5321 transport limit of 254 bytes.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}
	if len(email) > 254 {
		return errors.New("email address exceeds 254 characters")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
