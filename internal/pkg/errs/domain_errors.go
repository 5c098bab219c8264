package errs

import "errors"

// Error classes shared across layers. Concrete errors are marked with one of
// these so handlers can map them with errors.Is.
var (
	// field-level input problems, recoverable by correcting input
	ErrValidation = errors.New("validation error")

	// a looked-up entity does not exist
	ErrNotFound = errors.New("not found")

	// the booking submission port failed or timed out, retryable
	ErrSubmission = errors.New("submission failed")

	// the venue catalog could not be loaded, retryable
	ErrLoad = errors.New("load failed")

	// the operation is not allowed in the current state
	ErrConflict = errors.New("conflict")

	// the caller does not own the target
	ErrForbidden = errors.New("forbidden")
)
