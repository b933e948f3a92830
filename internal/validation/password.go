package validation

import (
	"errors"
	"strings"
)

// NIST favors length over composition rules; 12 is the floor here, and 72
// bytes is where bcrypt silently truncates.
const (
	passwordMinLen = 12
	passwordMaxLen = 72
)

// weakFragments are substrings that disqualify a password outright.
var weakFragments = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

func ValidatePassword(password string) error {
	if len(password) < passwordMinLen {
		return errors.New("password must be at least 12 characters")
	}
	if len(password) > passwordMaxLen {
		return errors.New("password must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	for _, fragment := range weakFragments {
		if strings.Contains(lower, fragment) {
			return errors.New("password is too common, please choose a stronger one")
		}
	}

	return nil
}
