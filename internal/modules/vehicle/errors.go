package vehicle

import "errors"

var (
	ErrNotFound      = errors.New("vehicle not found")
	ErrForbidden     = errors.New("not the vehicle owner")
	ErrOwnerOnly     = errors.New("only owners can create vehicles")
	ErrValidation    = errors.New("validation error")
	ErrTooManyPhotos = errors.New("photo limit exceeded")
)
