package domain

import "errors"

// Messages are returned verbatim in 400 responses.
var (
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrInvalidEmail          = errors.New("Invalid email")
)
