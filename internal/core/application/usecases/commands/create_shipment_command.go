package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to book a new shipment.
// Carries the route, the parcel attributes and the booking actor; the price
// and rate are derived by the handler, never supplied by the caller.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	pickupAddress   string
	deliveryAddress string
	weight          float64
	dimensions      shipment.Dimensions
	isFragile       bool
	deliveryOption  shipment.DeliveryOption
	actor           actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
// Validates identifiers, addresses, weight, dimensions and the actor.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	pickupAddress, deliveryAddress string,
	weight float64,
	dimensions shipment.Dimensions,
	isFragile bool,
	deliveryOption shipment.DeliveryOption,
	commandActor actor.Actor,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setParcel(weight, dimensions, deliveryOption),
		cmd.setActor(commandActor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.isFragile = isFragile
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PickupAddress returns the address the parcel is collected from.
func (c CreateShipmentCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the address the parcel is delivered to.
func (c CreateShipmentCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Weight returns the parcel weight.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Dimensions returns the parcel dimensions.
func (c CreateShipmentCommand) Dimensions() shipment.Dimensions {
	return c.dimensions
}

// IsFragile reports whether the parcel needs fragile handling.
func (c CreateShipmentCommand) IsFragile() bool {
	return c.isFragile
}

// DeliveryOption returns the requested delivery speed.
func (c CreateShipmentCommand) DeliveryOption() shipment.DeliveryOption {
	return c.deliveryOption
}

// Actor returns the authenticated caller booking the shipment.
func (c CreateShipmentCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateShipmentCommand) setParcel(weight float64, dimensions shipment.Dimensions, option shipment.DeliveryOption) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	if err := dimensions.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dimensions", err)
	}
	if err := option.Validate(); err != nil {
		return err
	}

	c.weight = weight
	c.dimensions = dimensions
	c.deliveryOption = option
	return nil
}

func (c *CreateShipmentCommand) setActor(commandActor actor.Actor) error {
	if err := commandActor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	c.actor = commandActor
	return nil
}
