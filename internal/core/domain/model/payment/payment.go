package payment

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
	// through the NewPayment factory method. This ensures all payments are properly validated.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Payment represents the payment collected for a shipment. It is an aggregate
// root with a small state machine (see Status) and two invariants that the
// coordinator relies on:
//
//   - At most one payment exists per shipment. The aggregate cannot enforce
//     this alone; the repository backs it with a uniqueness check inside the
//     creating transaction.
//   - amount is copied from the shipment price at creation and frozen, so a
//     later re-pricing of the shipment never changes what was charged.
type Payment struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	userID     kernel.UUID

	amount float64
	method Method
	status Status

	transactionDetails string

	isConstructed bool
}

// NewPayment creates a new Payment in Pending status with validation.
// The amount must be the shipment's current price and must be positive.
func NewPayment(id, shipmentID, userID kernel.UUID, amount float64, method Method) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setUserID(userID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, shipmentID, userID kernel.UUID,
	amount float64,
	method Method,
	paymentStatus Status,
	transactionDetails string,
) (*Payment, error) {
	p, err := NewPayment(id, shipmentID, userID, amount, method)
	if err != nil {
		return nil, err
	}

	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}

	p.status = paymentStatus
	p.transactionDetails = transactionDetails
	return p, nil
}

// Validate ensures the Payment instance was properly constructed through NewPayment.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// ShipmentID returns the shipment this payment belongs to.
func (p *Payment) ShipmentID() kernel.UUID {
	return p.shipmentID
}

// UserID returns the payer's identifier.
func (p *Payment) UserID() kernel.UUID {
	return p.userID
}

// Amount returns the amount frozen at creation time.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current settlement status.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionDetails returns the opaque settlement reference, if any.
func (p *Payment) TransactionDetails() string {
	return p.transactionDetails
}

// IsPayer reports whether userID is the payer of this payment.
func (p *Payment) IsPayer(userID kernel.UUID) bool {
	return p.userID.IsEqual(userID)
}

// Complete marks the payment as settled, recording the settlement reference.
// Valid only for Pending payments.
func (p *Payment) Complete(transactionDetails string) error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.transactionDetails = transactionDetails
	return nil
}

// Fail marks the payment as rejected by settlement, recording the failure
// reference. Valid only for Pending payments.
func (p *Payment) Fail(transactionDetails string) error {
	newStatus, err := p.status.Fail()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.transactionDetails = transactionDetails
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.shipmentID = id
	return nil
}

func (p *Payment) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.userID = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
