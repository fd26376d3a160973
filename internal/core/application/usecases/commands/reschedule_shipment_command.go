package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRescheduleShipmentCommandIsNotConstructed = errors.New(
	"RescheduleShipmentCommand must be created via NewRescheduleShipmentCommand constructor",
)

// RescheduleShipmentCommand represents a request to change a shipment's
// preferred delivery date and optional time window.
type RescheduleShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	date       time.Time
	timeWindow string
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewRescheduleShipmentCommand creates a command to reschedule a shipment.
// The date is required; the time window may be empty.
func NewRescheduleShipmentCommand(
	shipmentID kernel.UUID,
	date time.Time,
	timeWindow string,
	commandActor actor.Actor,
) (RescheduleShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RescheduleShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if date.IsZero() {
		return RescheduleShipmentCommand{}, errs.NewValueIsRequiredError("date")
	}
	if err := commandActor.Validate(); err != nil {
		return RescheduleShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return RescheduleShipmentCommand{
		shipmentID: shipmentID,
		date:       date,
		timeWindow: timeWindow,
		actor:      commandActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to reschedule.
func (c RescheduleShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Date returns the new preferred delivery date.
func (c RescheduleShipmentCommand) Date() time.Time {
	return c.date
}

// TimeWindow returns the new preferred delivery time window, possibly empty.
func (c RescheduleShipmentCommand) TimeWindow() string {
	return c.timeWindow
}

// Actor returns the authenticated caller requesting the reschedule.
func (c RescheduleShipmentCommand) Actor() actor.Actor {
	return c.actor
}
