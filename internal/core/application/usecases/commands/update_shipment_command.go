package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a partial update of a shipment. Nil
// fields are left unchanged; changing any pricing-relevant field (delivery
// address, weight, dimensions, fragility, delivery option) causes the
// handler to re-resolve the rate and recompute the price.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	pickupAddress   *string
	deliveryAddress *string
	weight          *float64
	dimensions      *shipment.Dimensions
	isFragile       *bool
	deliveryOption  *shipment.DeliveryOption
	actor           actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment.
// At least one patch field must be set.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	pickupAddress, deliveryAddress *string,
	weight *float64,
	dimensions *shipment.Dimensions,
	isFragile *bool,
	deliveryOption *shipment.DeliveryOption,
	commandActor actor.Actor,
) (UpdateShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return UpdateShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := commandActor.Validate(); err != nil {
		return UpdateShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	if pickupAddress == nil && deliveryAddress == nil && weight == nil &&
		dimensions == nil && isFragile == nil && deliveryOption == nil {
		return UpdateShipmentCommand{}, errs.NewValueIsRequiredError("patch fields")
	}

	cmd := UpdateShipmentCommand{
		shipmentID:      shipmentID,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		weight:          weight,
		dimensions:      dimensions,
		isFragile:       isFragile,
		deliveryOption:  deliveryOption,
		actor:           commandActor,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.validatePatchValues(),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PickupAddress returns the new pickup address, or nil when unchanged.
func (c UpdateShipmentCommand) PickupAddress() *string {
	return c.pickupAddress
}

// DeliveryAddress returns the new delivery address, or nil when unchanged.
func (c UpdateShipmentCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

// Weight returns the new weight, or nil when unchanged.
func (c UpdateShipmentCommand) Weight() *float64 {
	return c.weight
}

// Dimensions returns the new dimensions, or nil when unchanged.
func (c UpdateShipmentCommand) Dimensions() *shipment.Dimensions {
	return c.dimensions
}

// IsFragile returns the new fragility flag, or nil when unchanged.
func (c UpdateShipmentCommand) IsFragile() *bool {
	return c.isFragile
}

// DeliveryOption returns the new delivery option, or nil when unchanged.
func (c UpdateShipmentCommand) DeliveryOption() *shipment.DeliveryOption {
	return c.deliveryOption
}

// Actor returns the authenticated caller requesting the update.
func (c UpdateShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ChangesPricing reports whether the patch touches a field the price is
// derived from.
func (c UpdateShipmentCommand) ChangesPricing() bool {
	return c.deliveryAddress != nil || c.weight != nil || c.dimensions != nil ||
		c.isFragile != nil || c.deliveryOption != nil
}

func (c *UpdateShipmentCommand) validatePatchValues() error {
	if c.pickupAddress != nil && *c.pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if c.deliveryAddress != nil && *c.deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if c.weight != nil && *c.weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	if c.dimensions != nil {
		if err := c.dimensions.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("dimensions", err)
		}
	}
	if c.deliveryOption != nil {
		if err := c.deliveryOption.Validate(); err != nil {
			return err
		}
	}
	return nil
}
