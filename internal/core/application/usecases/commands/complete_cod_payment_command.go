package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCompleteCODPaymentCommandIsNotConstructed = errors.New(
	"CompleteCODPaymentCommand must be created via NewCompleteCODPaymentCommand constructor",
)

// CompleteCODPaymentCommand represents a delivery agent confirming cash
// collection for a cash-on-delivery payment.
type CompleteCODPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID          kernel.UUID
	transactionDetails string
	actor              actor.Actor

	guard guard.ConstructorGuard
}

// NewCompleteCODPaymentCommand creates a command to complete a COD payment.
// Transaction details are optional free text (receipt number etc.).
func NewCompleteCODPaymentCommand(
	paymentID kernel.UUID,
	transactionDetails string,
	commandActor actor.Actor,
) (CompleteCODPaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return CompleteCODPaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("paymentID", err)
	}
	if err := commandActor.Validate(); err != nil {
		return CompleteCODPaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return CompleteCODPaymentCommand{
		paymentID:          paymentID,
		transactionDetails: transactionDetails,
		actor:              commandActor,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCODPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCODPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to complete.
func (c CompleteCODPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// TransactionDetails returns the collection notes supplied by the agent.
func (c CompleteCODPaymentCommand) TransactionDetails() string {
	return c.transactionDetails
}

// Actor returns the authenticated caller confirming the collection.
func (c CompleteCODPaymentCommand) Actor() actor.Actor {
	return c.actor
}
