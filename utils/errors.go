package utils

import (
	"errors"
	"net/http"
)

// Error taxonomy shared by all controllers. Validation and not-found
// errors are surfaced to the caller with no partial mutation; conflicts
// mean a status transition was not permitted; concurrency errors mean a
// stale write was detected. Nothing is retried automatically.

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

type ConcurrencyError struct {
	Msg string
}

func (e *ConcurrencyError) Error() string { return e.Msg }

// StatusForError maps a domain error to an HTTP status. Unknown errors
// map to 500 and their details stay out of the response.
func StatusForError(err error) int {
	var (
		nf *NotFoundError
		ve *ValidationError
		cf *ConflictError
		ce *ConcurrencyError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &cf):
		return http.StatusConflict
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
