package errs

import (
	"errors"
	"fmt"
)

// ErrDuplicateObject is the sentinel error for uniqueness violations, such as
// a second payment being created for a shipment that already has one.
var ErrDuplicateObject = errors.New("object already exists")

// DuplicateError reports that creating an object would violate a uniqueness
// invariant. ParamName names the conflicting key (for example "shipmentId"),
// ID carries the conflicting value.
type DuplicateError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateError creates a DuplicateError without an underlying cause.
func NewDuplicateError(paramName string, id any) *DuplicateError {
	return &DuplicateError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewDuplicateErrorWithCause creates a DuplicateError wrapping the database
// error that exposed the conflict, typically a unique constraint violation.
func NewDuplicateErrorWithCause(paramName string, id any, cause error) *DuplicateError {
	return &DuplicateError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *DuplicateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrDuplicateObject, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDuplicateObject, e.ID))
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateObject
}
