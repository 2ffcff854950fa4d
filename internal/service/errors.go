package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// statuses with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation (missing title, missing url, missing cmd).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoteNotFound is returned when no notes.csv row carries the
	// requested identifier.
	ErrNoteNotFound = errors.New("note not found")
)
