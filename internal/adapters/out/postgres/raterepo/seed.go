package raterepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"

	"gorm.io/gorm"
)

// seedRate holds the initial pricing values for one tier.
type seedRate struct {
	tier                     rate.CityTier
	baseRate                 float64
	fragileMultiplier        float64
	weightMultiplier         float64
	sizeMultiplier           float64
	deliveryOptionMultiplier float64
}

// getSeedRates returns the default rate table: one active rate per tier,
// with prices climbing from the dense Tier1 metro network to the Tier4
// catch-all zone.
func getSeedRates() []seedRate {
	return []seedRate{
		{tier: rate.Tier1, baseRate: 10, fragileMultiplier: 1.5, weightMultiplier: 2, sizeMultiplier: 1, deliveryOptionMultiplier: 1.2},
		{tier: rate.Tier2, baseRate: 15, fragileMultiplier: 1.5, weightMultiplier: 2.5, sizeMultiplier: 1.2, deliveryOptionMultiplier: 1.2},
		{tier: rate.Tier3, baseRate: 20, fragileMultiplier: 1.6, weightMultiplier: 3, sizeMultiplier: 1.5, deliveryOptionMultiplier: 1.25},
		{tier: rate.Tier4, baseRate: 30, fragileMultiplier: 1.8, weightMultiplier: 4, sizeMultiplier: 2, deliveryOptionMultiplier: 1.3},
	}
}

// SeedDefaultRates inserts the default rate table when the rates table is
// empty. Idempotent: an already-seeded database is left untouched, so admin
// rate adjustments survive restarts.
func SeedDefaultRates(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&RateDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repository := NewGormRateRepository(db)
	for _, seed := range getSeedRates() {
		r, err := rate.NewRate(
			kernel.NewUUID(),
			seed.tier,
			seed.baseRate,
			seed.fragileMultiplier,
			seed.weightMultiplier,
			seed.sizeMultiplier,
			seed.deliveryOptionMultiplier,
		)
		if err != nil {
			return err
		}

		if err = repository.Add(ctx, r); err != nil {
			return err
		}
	}

	return nil
}
