package service

import "errors"

// Error kinds. Handlers match on these with errors.Is and translate them to
// transport status codes; business logic never sees HTTP.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// ValidationError carries the user-facing message for a malformed request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a missing referenced entity or target row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a business-rule or uniqueness violation. Duplicates
// holds the full names of already-assigned employees when the conflict was
// detected before the write; it is empty when the storage unique index caught
// a racing insert.
type ConflictError struct {
	Message    string
	Duplicates []string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
