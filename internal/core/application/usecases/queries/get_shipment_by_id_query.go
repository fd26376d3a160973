// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves one shipment with its derived price and
// projected status.
type GetShipmentByIDQuery struct {
	shipmentID kernel.UUID
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query to retrieve a shipment.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID, queryActor actor.Actor) (GetShipmentByIDQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := queryActor.Validate(); err != nil {
		return GetShipmentByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return GetShipmentByIDQuery{
		shipmentID: shipmentID,
		actor:      queryActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Actor returns the authenticated caller.
func (q GetShipmentByIDQuery) Actor() actor.Actor {
	return q.actor
}

// ShipmentResponse represents a shipment in the read model.
type ShipmentResponse struct {
	ID                    kernel.UUID
	OwnerID               kernel.UUID
	PickupAddress         string
	DeliveryAddress       string
	Weight                float64
	Length                float64
	Width                 float64
	Height                float64
	IsFragile             bool
	DeliveryOption        string
	RateID                kernel.UUID
	Price                 float64
	Status                string
	DeliveryAgentID       *kernel.UUID
	PreferredDeliveryDate *time.Time
	PreferredDeliveryTime *string
	CreatedAt             time.Time
}
