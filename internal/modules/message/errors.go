package message

import "errors"

var (
	ErrNotFound   = errors.New("booking not found")
	ErrForbidden  = errors.New("not a party to this booking")
	ErrValidation = errors.New("validation error")
)
