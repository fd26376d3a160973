// Package statusrepo provides data transfer objects and mapping functions for the status ledger.
// The ledger is append-only: entries are inserted and soft-deleted (retracted), never
// updated in place. The insertion timestamp orders the ledger for the current-status
// derivation.
package statusrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusDTO represents the database structure for persisting ledger entries.
type StatusDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (StatusDTO) TableName() string {
	return "statuses"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *status.Entry) StatusDTO {
	return StatusDTO{
		ID:         entry.ID().Bytes(),
		ShipmentID: entry.ShipmentID().Bytes(),
		Name:       entry.Name().String(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto StatusDTO) (*status.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	name, err := status.NameFromString(dto.Name)
	if err != nil {
		return nil, err
	}

	return status.RestoreEntry(id, shipmentID, name)
}
