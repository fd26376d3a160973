package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
)

// StatusRepository defines the persistence contract for the status ledger.
// The ledger is append-only: entries are added and retracted (soft-deleted),
// never updated in place. Retracted entries no longer count toward the
// shipment's current-status derivation.
type StatusRepository interface {
	// Add appends a new ledger entry.
	Add(ctx context.Context, aggregate *status.Entry) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*status.Entry, error)

	// Retract soft-deletes a ledger entry so it stops counting toward the
	// current-status derivation.
	Retract(ctx context.Context, id kernel.UUID) error

	// GetLatest retrieves the most recent surviving entry for a shipment,
	// ordered by creation time. Returns ObjectNotFoundError when the ledger
	// is empty.
	GetLatest(ctx context.Context, shipmentID kernel.UUID) (*status.Entry, error)
}
