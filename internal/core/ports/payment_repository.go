package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// At most one payment may exist per shipment; implementations enforce this
// with a unique constraint on the shipment id inside the insert's
// transaction and surface violations as DuplicateError.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	// Returns DuplicateError when a payment already exists for the shipment.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByShipmentID retrieves the payment created against a shipment.
	GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error)
}
