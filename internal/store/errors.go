package store

import "errors"

// Failure kinds surfaced to the boundary layer. Operations wrap these with the
// offending entity and id so callers can match with errors.Is and still report
// something specific.
var (
	// ErrNotFound: the addressed entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound: a foreign id in the payload does not exist.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrDuplicateEmail: the email is already registered to another user,
	// active or not.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidEmail: the external validation collaborator rejected the
	// address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrValidation: a malformed filter, sort or enum parameter.
	ErrValidation = errors.New("invalid parameter")
)
