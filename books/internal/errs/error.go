package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("Avaliation not found")
	ErrValidation    = errors.New("validation failed")
	ErrTitleRequired = errors.New("Title query parameter is required")
	ErrUpstream      = errors.New("metadata provider unavailable")
)

type ErrorResponse struct {
	Error string `json:"error"`
}
