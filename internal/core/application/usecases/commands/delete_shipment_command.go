package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to soft-delete a shipment.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to soft-delete a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.UUID, commandActor actor.Actor) (DeleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return DeleteShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := commandActor.Validate(); err != nil {
		return DeleteShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return DeleteShipmentCommand{
		shipmentID: shipmentID,
		actor:      commandActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the authenticated caller requesting the deletion.
func (c DeleteShipmentCommand) Actor() actor.Actor {
	return c.actor
}
