package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable failure kinds. Handlers map these to
// HTTP status codes; messages are user-facing and go out on the wire as-is.
var (
	ErrInvalidDate      = errors.New("Invalid date format; use dd-mm-yyyy")
	ErrMissingInput     = errors.New("Missing subject or marks")
	ErrInvalidStatus    = errors.New("Invalid status")
	ErrSubjectNotFound  = errors.New("Subject not found")
	ErrMissingQuery     = errors.New("Provide a search query")
	ErrDuplicateRollNo  = errors.New("Roll no already exists")
	ErrDuplicateSubject = errors.New("Subject already exists")
)

// StudentNotFoundError carries the offending id so the caller can tell which
// mark of a batch failed.
type StudentNotFoundError struct {
	ID uint
}

func (e *StudentNotFoundError) Error() string {
	return fmt.Sprintf("Student %d not found", e.ID)
}
