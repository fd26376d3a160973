package rate

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrRateIsNotConstructed is returned when a Rate instance was not created through
	// the NewRate factory method or RestoreRate. This ensures all rates are properly validated.
	ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")
)

// Rate is the pricing record for one city tier. A shipment references the
// rate that was active for its destination tier at creation time, and the
// pricing engine derives the shipment price from the rate's base rate and
// multipliers.
//
// Rate follows these invariants:
//   - Must have a valid unique identifier
//   - Must belong to a valid city tier
//   - Base rate and all multipliers must be positive
//   - Immutable once referenced by a shipment (soft-deletable only)
//
// Rates are created by seed or admin data, never by the coordination core.
type Rate struct {
	id                       kernel.UUID
	cityTier                 CityTier
	baseRate                 float64
	fragileMultiplier        float64
	weightMultiplier         float64
	sizeMultiplier           float64
	deliveryOptionMultiplier float64

	isConstructed bool
}

// NewRate creates a new Rate instance with validation. This is the only way
// (together with RestoreRate) to obtain a valid Rate.
//
// All monetary inputs must be positive: a zero or negative base rate or
// multiplier would make every derived price degenerate.
func NewRate(
	id kernel.UUID,
	cityTier CityTier,
	baseRate, fragileMultiplier, weightMultiplier, sizeMultiplier, deliveryOptionMultiplier float64,
) (*Rate, error) {
	r := &Rate{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCityTier(cityTier),
		r.setBaseRate(baseRate),
		r.setMultiplier("fragileMultiplier", fragileMultiplier, &r.fragileMultiplier),
		r.setMultiplier("weightMultiplier", weightMultiplier, &r.weightMultiplier),
		r.setMultiplier("sizeMultiplier", sizeMultiplier, &r.sizeMultiplier),
		r.setMultiplier("deliveryOptionMultiplier", deliveryOptionMultiplier, &r.deliveryOptionMultiplier),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRate reconstructs a Rate from persistence. It applies the same
// validation as NewRate; repository rows that fail validation indicate
// corrupted seed data and are surfaced as errors rather than repaired.
func RestoreRate(
	id kernel.UUID,
	cityTier CityTier,
	baseRate, fragileMultiplier, weightMultiplier, sizeMultiplier, deliveryOptionMultiplier float64,
) (*Rate, error) {
	return NewRate(id, cityTier, baseRate, fragileMultiplier, weightMultiplier, sizeMultiplier, deliveryOptionMultiplier)
}

// Validate ensures the Rate instance was properly constructed through NewRate.
func (r *Rate) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRateIsNotConstructed
	}
	return nil
}

// IsEqual compares two rates by their unique identifiers.
func (r *Rate) IsEqual(other *Rate) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rate's unique identifier.
func (r *Rate) ID() kernel.UUID {
	return r.id
}

// CityTier returns the pricing zone this rate applies to.
func (r *Rate) CityTier() CityTier {
	return r.cityTier
}

// BaseRate returns the flat component of the price.
func (r *Rate) BaseRate() float64 {
	return r.baseRate
}

// FragileMultiplier returns the multiplier applied to fragile shipments.
func (r *Rate) FragileMultiplier() float64 {
	return r.fragileMultiplier
}

// WeightMultiplier returns the per-weight-unit price component.
func (r *Rate) WeightMultiplier() float64 {
	return r.weightMultiplier
}

// SizeMultiplier returns the per-volume-unit price component.
func (r *Rate) SizeMultiplier() float64 {
	return r.sizeMultiplier
}

// DeliveryOptionMultiplier returns the multiplier applied to express shipments.
func (r *Rate) DeliveryOptionMultiplier() float64 {
	return r.deliveryOptionMultiplier
}

func (r *Rate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rate) setCityTier(tier CityTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	r.cityTier = tier
	return nil
}

func (r *Rate) setBaseRate(baseRate float64) error {
	if baseRate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseRate is invalid",
			fmt.Errorf("%f is not greater than 0", baseRate))
	}
	r.baseRate = baseRate
	return nil
}

func (r *Rate) setMultiplier(name string, value float64, target *float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid",
			fmt.Errorf("%f is not greater than 0", value))
	}
	*target = value
	return nil
}
