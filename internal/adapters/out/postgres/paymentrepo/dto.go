// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// The unique index on the shipment column enforces the at-most-one-payment-per-shipment
// rule at the storage level; the repository translates violations into DuplicateError.
package paymentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
type PaymentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	Amount             float64
	Method             string
	Status             string
	TransactionDetails string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(payment *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                 payment.ID().Bytes(),
		ShipmentID:         payment.ShipmentID().Bytes(),
		UserID:             payment.UserID().Bytes(),
		Amount:             payment.Amount(),
		Method:             payment.Method().String(),
		Status:             payment.Status().String(),
		TransactionDetails: payment.TransactionDetails(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, shipmentID, userID, dto.Amount, method, paymentStatus, dto.TransactionDetails)
}
