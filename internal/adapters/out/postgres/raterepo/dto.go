// Package raterepo provides data transfer objects and mapping functions for rate persistence.
// Rates are reference data: seeded at startup, read by the pricing flow, and never
// mutated once a shipment references them.
package raterepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"

	"github.com/google/uuid"
)

// RateDTO represents the database structure for persisting rate records.
// The tier column is indexed because every shipment creation resolves the
// active rate for exactly one tier.
type RateDTO struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CityTier                 string    `gorm:"index:idx_rates_tier_active"`
	BaseRate                 float64
	FragileMultiplier        float64
	WeightMultiplier         float64
	SizeMultiplier           float64
	DeliveryOptionMultiplier float64
	IsActive                 bool `gorm:"index:idx_rates_tier_active"`
}

// TableName specifies the database table name for rate records.
func (RateDTO) TableName() string {
	return "rates"
}

// fromDomain converts a rate domain aggregate to its database representation.
// Newly persisted rates are always active; deactivation is an admin operation
// that flips the flag without touching the record.
func fromDomain(rate *rate.Rate) RateDTO {
	return RateDTO{
		ID:                       rate.ID().Bytes(),
		CityTier:                 rate.CityTier().String(),
		BaseRate:                 rate.BaseRate(),
		FragileMultiplier:        rate.FragileMultiplier(),
		WeightMultiplier:         rate.WeightMultiplier(),
		SizeMultiplier:           rate.SizeMultiplier(),
		DeliveryOptionMultiplier: rate.DeliveryOptionMultiplier(),
		IsActive:                 true,
	}
}

// toDomain converts a database DTO to a rate domain aggregate.
func toDomain(dto RateDTO) (*rate.Rate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tier, err := rate.CityTierFromString(dto.CityTier)
	if err != nil {
		return nil, err
	}

	return rate.RestoreRate(
		id,
		tier,
		dto.BaseRate,
		dto.FragileMultiplier,
		dto.WeightMultiplier,
		dto.SizeMultiplier,
		dto.DeliveryOptionMultiplier,
	)
}
