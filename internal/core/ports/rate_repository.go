package ports

import (
	"context"

	"shipping/internal/core/domain/model/rate"
)

// RateRepository defines the persistence contract for rate records.
// Rates are seed/admin data: the core reads them to price shipments and
// never mutates a rate once a shipment references it.
type RateRepository interface {
	// Add persists a new rate record. Used by seeding and admin tooling only.
	Add(ctx context.Context, aggregate *rate.Rate) error

	// GetActiveByTier retrieves the single active rate for a city tier.
	// Absence of a rate for a serviced tier is a server-data error.
	GetActiveByTier(ctx context.Context, tier rate.CityTier) (*rate.Rate, error)
}
