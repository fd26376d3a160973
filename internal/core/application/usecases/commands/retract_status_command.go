package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRetractStatusCommandIsNotConstructed = errors.New(
	"RetractStatusCommand must be created via NewRetractStatusCommand constructor",
)

// RetractStatusCommand represents a request to retract a status ledger
// entry, typically to undo a scan made against the wrong parcel.
type RetractStatusCommand struct { //nolint:recvcheck //using for validation
	statusID kernel.UUID
	actor    actor.Actor

	guard guard.ConstructorGuard
}

// NewRetractStatusCommand creates a command to retract a ledger entry.
func NewRetractStatusCommand(statusID kernel.UUID, commandActor actor.Actor) (RetractStatusCommand, error) {
	if err := statusID.Validate(); err != nil {
		return RetractStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("statusID", err)
	}
	if err := commandActor.Validate(); err != nil {
		return RetractStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return RetractStatusCommand{
		statusID: statusID,
		actor:    commandActor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetractStatusCommand) Validate() error {
	return c.guard.Validate(ErrRetractStatusCommandIsNotConstructed)
}

// StatusID returns the identifier of the ledger entry to retract.
func (c RetractStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// Actor returns the authenticated caller requesting the retraction.
func (c RetractStatusCommand) Actor() actor.Actor {
	return c.actor
}
