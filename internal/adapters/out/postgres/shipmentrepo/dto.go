// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The owner and status columns are indexed for the list queries; DeletedAt makes
// deletion soft so payment and report history survives.
type ShipmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID               uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress         string
	DeliveryAddress       string
	Weight                float64
	Length                float64
	Width                 float64
	Height                float64
	IsFragile             bool
	DeliveryOption        string
	RateID                uuid.UUID `gorm:"type:uuid"`
	Price                 float64
	Status                string     `gorm:"index"`
	DeliveryAgentID       *uuid.UUID `gorm:"type:uuid;index"`
	PreferredDeliveryDate *time.Time
	PreferredDeliveryTime *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(shipment *shipment.Shipment) ShipmentDTO {
	var agentID *uuid.UUID
	if id := shipment.DeliveryAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return ShipmentDTO{
		ID:                    shipment.ID().Bytes(),
		OwnerID:               shipment.OwnerID().Bytes(),
		PickupAddress:         shipment.PickupAddress(),
		DeliveryAddress:       shipment.DeliveryAddress(),
		Weight:                shipment.Weight(),
		Length:                shipment.Dimensions().Length(),
		Width:                 shipment.Dimensions().Width(),
		Height:                shipment.Dimensions().Height(),
		IsFragile:             shipment.IsFragile(),
		DeliveryOption:        shipment.DeliveryOption().String(),
		RateID:                shipment.RateID().Bytes(),
		Price:                 shipment.Price(),
		Status:                shipment.Status().String(),
		DeliveryAgentID:       agentID,
		PreferredDeliveryDate: shipment.PreferredDeliveryDate(),
		PreferredDeliveryTime: shipment.PreferredDeliveryTime(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including pricing, projected status,
// agent assignment and delivery preferences using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	rateID, err := kernel.UUIDFromBytes(dto.RateID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.DeliveryAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	dimensions, err := shipment.NewDimensions(dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	option, err := shipment.DeliveryOptionFromString(dto.DeliveryOption)
	if err != nil {
		return nil, err
	}

	projected, err := status.NameFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		ownerID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.Weight,
		dimensions,
		dto.IsFragile,
		option,
		rateID,
		dto.Price,
		projected,
		agentID,
		dto.PreferredDeliveryDate,
		dto.PreferredDeliveryTime,
	)
}
