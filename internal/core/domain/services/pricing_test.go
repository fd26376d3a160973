package services_test

import (
	"math"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRate(t *testing.T) *rate.Rate {
	t.Helper()
	r, err := rate.NewRate(kernel.NewUUID(), rate.Tier2, 10, 1.5, 2, 1, 1.2)
	require.NoError(t, err)
	return r
}

func TestPriceCalculator_Calculate(t *testing.T) {
	calculator := services.NewPriceCalculator()

	t.Run("should apply fragile and express multipliers", func(t *testing.T) {
		// (10 + 2*5 + 1*8) * 1.5 * 1.2 = 28 * 1.8 = 50.40
		price, err := calculator.Calculate(newTestRate(t), 5, 8, true, shipment.Express)

		require.NoError(t, err)
		assert.InDelta(t, 50.40, price, 0.0001)
	})

	t.Run("should skip multipliers for standard non-fragile parcels", func(t *testing.T) {
		// (10 + 2*5 + 1*8) * 1 * 1 = 28.00
		price, err := calculator.Calculate(newTestRate(t), 5, 8, false, shipment.Standard)

		require.NoError(t, err)
		assert.InDelta(t, 28.00, price, 0.0001)
	})

	t.Run("should return base rate for zero weight and volume", func(t *testing.T) {
		price, err := calculator.Calculate(newTestRate(t), 0, 0, false, shipment.Standard)

		require.NoError(t, err)
		assert.InDelta(t, 10.00, price, 0.0001)
	})

	t.Run("should round to two decimal places", func(t *testing.T) {
		r, err := rate.NewRate(kernel.NewUUID(), rate.Tier1, 10, 1.333, 2, 1, 1.2)
		require.NoError(t, err)

		// (10 + 2*1 + 1*1) * 1.333 = 17.329 -> 17.33
		price, err := calculator.Calculate(r, 1, 1, true, shipment.Standard)

		require.NoError(t, err)
		assert.InDelta(t, 17.33, price, 0.0001)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		r := newTestRate(t)

		first, err := calculator.Calculate(r, 3.7, 12.25, true, shipment.Express)
		require.NoError(t, err)
		second, err := calculator.Calculate(r, 3.7, 12.25, true, shipment.Express)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should reject non-finite results", func(t *testing.T) {
		r := newTestRate(t)

		_, err := calculator.Calculate(r, math.Inf(1), 8, false, shipment.Standard)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = calculator.Calculate(r, math.NaN(), 8, false, shipment.Standard)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed rate", func(t *testing.T) {
		var r rate.Rate
		_, err := calculator.Calculate(&r, 1, 1, false, shipment.Standard)
		require.ErrorIs(t, err, rate.ErrRateIsNotConstructed)
	})

	t.Run("should reject unknown delivery option", func(t *testing.T) {
		_, err := calculator.Calculate(newTestRate(t), 1, 1, false, shipment.OptionUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
