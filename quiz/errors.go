package quiz

import "errors"

var (
	// ErrUnauthenticated is returned when no verified principal is present
	// on an operation that requires one.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when an authenticated principal is not the
	// designated author on an author-only operation.
	ErrForbidden = errors.New("author access required")
	// ErrNotFound indicates the referenced quiz no longer exists.
	ErrNotFound = errors.New("quiz not found")
	// ErrValidation flags a malformed caller payload. The wrapped message
	// lists what was wrong.
	ErrValidation = errors.New("invalid input")
)
