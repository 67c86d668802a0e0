package apperr

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrInvalid     = errors.New("invalid document")
	ErrUnavailable = errors.New("unavailable")
)
