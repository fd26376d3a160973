package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAppendStatusCommandIsNotConstructed = errors.New(
	"AppendStatusCommand must be created via NewAppendStatusCommand constructor",
)

// AppendStatusCommand represents a request to append an entry to a
// shipment's status ledger.
type AppendStatusCommand struct { //nolint:recvcheck //using for validation
	statusID   kernel.UUID
	shipmentID kernel.UUID
	name       status.Name
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewAppendStatusCommand creates a command to append a status ledger entry.
func NewAppendStatusCommand(
	statusID, shipmentID kernel.UUID,
	name status.Name,
	commandActor actor.Actor,
) (AppendStatusCommand, error) {
	if err := statusID.Validate(); err != nil {
		return AppendStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("statusID", err)
	}
	if err := shipmentID.Validate(); err != nil {
		return AppendStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := name.Validate(); err != nil {
		return AppendStatusCommand{}, err
	}
	if err := commandActor.Validate(); err != nil {
		return AppendStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return AppendStatusCommand{
		statusID:   statusID,
		shipmentID: shipmentID,
		name:       name,
		actor:      commandActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendStatusCommand) Validate() error {
	return c.guard.Validate(ErrAppendStatusCommandIsNotConstructed)
}

// StatusID returns the identifier for the new ledger entry.
func (c AppendStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// ShipmentID returns the identifier of the shipment whose ledger grows.
func (c AppendStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Name returns the status name to append.
func (c AppendStatusCommand) Name() status.Name {
	return c.name
}

// Actor returns the authenticated caller appending the status.
func (c AppendStatusCommand) Actor() actor.Actor {
	return c.actor
}
