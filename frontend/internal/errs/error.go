package errs

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrBackend    = errors.New("backend unavailable")
	ErrSearch     = errors.New("Error searching books")
)

type ErrorResponse struct {
	Error string `json:"error"`
}
