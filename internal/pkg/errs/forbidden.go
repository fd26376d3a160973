package errs

import (
	"errors"
	"fmt"
)

// ErrForbidden is the sentinel error for authorization failures. It is
// returned whenever an actor attempts an operation that its roles and
// ownership do not permit.
var ErrForbidden = errors.New("operation is forbidden")

// ForbiddenError reports that ActorID attempted Action without the required
// rights. The actor identity is kept for audit logging; it is never exposed
// past the HTTP boundary.
type ForbiddenError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewForbiddenError creates a ForbiddenError without an underlying cause.
func NewForbiddenError(actorID, action string) *ForbiddenError {
	return &ForbiddenError{
		ActorID: actorID,
		Action:  action,
	}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping the error that
// surfaced during the authorization check.
func NewForbiddenErrorWithCause(actorID, action string, cause error) *ForbiddenError {
	return &ForbiddenError{
		ActorID: actorID,
		Action:  action,
		Cause:   cause,
	}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor is: %s, action is: %s (cause: %s)",
			ErrForbidden, e.ActorID, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
