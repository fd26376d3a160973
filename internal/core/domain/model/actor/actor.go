package actor

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("actor is not constructed")

// Actor is the authenticated caller of an operation: its identity plus
// the roles granted to it.
type Actor struct {
	guard guard.ConstructorGuard

	id    kernel.UUID
	roles []Role
}

// NewActor creates an actor with at least one valid role.
func NewActor(id kernel.UUID, roles []Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if len(roles) == 0 {
		return Actor{}, errs.NewValueIsRequiredError("roles")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return Actor{}, errs.NewValueIsInvalidErrorWithCause("roles", err)
		}
	}
	return Actor{
		guard: guard.NewConstructorGuard(),
		id:    id,
		roles: roles,
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Roles() []Role {
	return a.roles
}

func (a Actor) HasRole(role Role) bool {
	for _, r := range a.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (a Actor) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if a.HasRole(role) {
			return true
		}
	}
	return false
}
