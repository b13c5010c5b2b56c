package domain

import shared "pilot-server/internal/shared_kernel/domain"

var (
	ErrMissingRequiredFields = shared.ErrMissingRequiredFields
	ErrInvalidEmail          = shared.ErrInvalidEmail
)
