package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetPaymentByIDQueryIsNotConstructed = errors.New(
	"GetPaymentByIDQuery must be created via NewGetPaymentByIDQuery constructor",
)

// GetPaymentByIDQuery retrieves one payment.
type GetPaymentByIDQuery struct {
	paymentID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetPaymentByIDQuery creates a query to retrieve a payment.
func NewGetPaymentByIDQuery(paymentID kernel.UUID, queryActor actor.Actor) (GetPaymentByIDQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("paymentID", err)
	}
	if err := queryActor.Validate(); err != nil {
		return GetPaymentByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return GetPaymentByIDQuery{
		paymentID: paymentID,
		actor:     queryActor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentByIDQueryIsNotConstructed)
}

// PaymentID returns the identifier of the requested payment.
func (q GetPaymentByIDQuery) PaymentID() kernel.UUID {
	return q.paymentID
}

// Actor returns the authenticated caller.
func (q GetPaymentByIDQuery) Actor() actor.Actor {
	return q.actor
}

// PaymentResponse represents a payment in the read model.
type PaymentResponse struct {
	ID                 kernel.UUID
	ShipmentID         kernel.UUID
	UserID             kernel.UUID
	Amount             float64
	Method             string
	Status             string
	TransactionDetails string
	CreatedAt          time.Time
}
