package utils

import (
	"fmt"
	"regexp"
)

// Intentionally lightweight, this is not an RFC 5322 parser. Submissions that
// were accepted before must keep being accepted, so do not tighten it.
var _emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates that the given email string looks like local@domain.tld
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !_emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format '%s'", email)
	}

	return nil
}

// IsValidEmail checks if the given email string is a valid email address
func IsValidEmail(email string) bool {
	return ValidateEmail(email) == nil
}
