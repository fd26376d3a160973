// Package guard provides a defensive construction pattern for application-layer
// objects such as commands and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so handlers can reject objects that
// bypassed their constructor and its validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value fails validation, which is what distinguishes a properly
// constructed object from a bare struct literal.
//
// Example usage:
//
//	type CreateShipmentCommand struct {
//	    ownerID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateShipmentCommand(ownerID kernel.UUID) (CreateShipmentCommand, error) {
//	    if err := ownerID.Validate(); err != nil {
//	        return CreateShipmentCommand{}, err
//	    }
//	    return CreateShipmentCommand{
//	        ownerID: ownerID,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
