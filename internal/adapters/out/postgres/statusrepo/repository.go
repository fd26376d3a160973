package statusrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusRepository {
	return &GormStatusRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the ledger.
func (r *GormStatusRepository) Add(ctx context.Context, aggregate *status.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ledger entry by ID. Retracted entries are not returned.
func (r *GormStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Retract soft-deletes a ledger entry so it stops counting toward the
// current-status derivation. The row survives for audit.
func (r *GormStatusRepository) Retract(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status entry", id.String())
	}

	return nil
}

// GetLatest retrieves the most recent surviving entry for a shipment.
// Entry IDs break ties between rows inserted in the same microsecond.
func (r *GormStatusRepository) GetLatest(ctx context.Context, shipmentID kernel.UUID) (*status.Entry, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at DESC, id DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status entry", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
