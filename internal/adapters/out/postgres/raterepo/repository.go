package raterepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/rate"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateRepository implements RateRepository using GORM.
//
// Rates are read outside the unit of work: the pricing flow only needs a
// consistent snapshot of the active rate, so the repository operates on the
// base connection and does not track aggregates.
type GormRateRepository struct {
	db *gorm.DB
}

// NewGormRateRepository creates a new GORM rate repository.
func NewGormRateRepository(db *gorm.DB) *GormRateRepository {
	return &GormRateRepository{
		db: db,
	}
}

// Add saves a new rate record to the database.
func (r *GormRateRepository) Add(ctx context.Context, aggregate *rate.Rate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetActiveByTier retrieves the single active rate for a city tier.
func (r *GormRateRepository) GetActiveByTier(ctx context.Context, tier rate.CityTier) (*rate.Rate, error) {
	if err := tier.Validate(); err != nil {
		return nil, err
	}

	var dto RateDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "city_tier = ? AND is_active = ?", tier.String(), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rate", tier.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
