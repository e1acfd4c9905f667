package domain

import "errors"

var (
	// ErrNotFound means no record exists for the requested date.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateDate means a shift is already logged for the date and the
	// caller has not confirmed an overwrite.
	ErrDuplicateDate = errors.New("shift already logged for date")

	// ErrValidation marks user-input errors: malformed times, end before
	// start, non-numeric pay rate. Wrapped with %w and a corrective message.
	ErrValidation = errors.New("validation failed")
)
