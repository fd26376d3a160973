package services

import (
	"errors"
	"math"

	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// PriceCalculator is a domain service that computes a shipment's price from
// a rate record and the shipment's pricing-relevant attributes.
//
// Formula:
//
//	price = (baseRate + weightMultiplier*weight + sizeMultiplier*volume)
//	        * fragileMultiplier (if fragile, else 1)
//	        * deliveryOptionMultiplier (if Express, else 1)
//
// rounded to 2 decimal places.
//
// The calculation is pure and deterministic: identical inputs always produce
// identical output, and no I/O happens here. Non-finite results (NaN or
// infinity) are rejected rather than silently defaulted.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate computes the price of a parcel with the given attributes under
// the given rate. Weight and volume may be zero; the rate's own fields are
// assumed positive (the rate aggregate enforces that at construction).
func (p PriceCalculator) Calculate(
	r *rate.Rate,
	weight float64,
	volume float64,
	isFragile bool,
	deliveryOption shipment.DeliveryOption,
) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if err := deliveryOption.Validate(); err != nil {
		return 0, err
	}

	fragileMultiplier := 1.0
	if isFragile {
		fragileMultiplier = r.FragileMultiplier()
	}

	deliveryMultiplier := 1.0
	if deliveryOption.IsExpress() {
		deliveryMultiplier = r.DeliveryOptionMultiplier()
	}

	price := (r.BaseRate() + r.WeightMultiplier()*weight + r.SizeMultiplier()*volume) *
		fragileMultiplier * deliveryMultiplier

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("calculation produced a non-finite value"))
	}

	return math.Round(price*100) / 100, nil
}
