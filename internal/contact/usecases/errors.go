package usecases

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmailNotConfigured = errors.New("contact email not configured")

// EmailNotConfiguredError names every variable the contact flow needs, not
// only the missing ones, so the answer never hints at what is set.
type EmailNotConfiguredError struct {
	Required []string
	Missing  []string
}

func (e *EmailNotConfiguredError) Error() string {
	return fmt.Sprintf("Contact email not configured (set %s).", strings.Join(e.Required, ", "))
}

func (e *EmailNotConfiguredError) Is(target error) bool {
	return target == ErrEmailNotConfigured
}
