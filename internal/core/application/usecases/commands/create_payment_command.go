package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to create a payment against a
// shipment. The amount is never supplied by the caller: it is copied from
// the shipment's current price when the payment is created and frozen
// thereafter.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	shipmentID kernel.UUID
	method     payment.Method
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to open a payment.
func NewCreatePaymentCommand(
	paymentID, shipmentID kernel.UUID,
	method payment.Method,
	commandActor actor.Actor,
) (CreatePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("paymentID", err)
	}
	if err := shipmentID.Validate(); err != nil {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := method.Validate(); err != nil {
		return CreatePaymentCommand{}, err
	}
	if err := commandActor.Validate(); err != nil {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return CreatePaymentCommand{
		paymentID:  paymentID,
		shipmentID: shipmentID,
		method:     method,
		actor:      commandActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ShipmentID returns the identifier of the shipment being paid for.
func (c CreatePaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Method returns the chosen payment method.
func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

// Actor returns the authenticated caller opening the payment.
func (c CreatePaymentCommand) Actor() actor.Actor {
	return c.actor
}
