package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking or vehicle not found")
	ErrForbidden         = errors.New("not a party to this booking")
	ErrValidation        = errors.New("validation error")
	ErrSelfBooking       = errors.New("owners cannot book their own vehicle")
	ErrConflict          = errors.New("vehicle not available for these dates")
	ErrInvalidTransition = errors.New("invalid status transition")
)
