package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler retrieves a single shipment read model from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for shipment retrieval.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle executes the query. The shipment is visible to its owner, its
// assigned delivery agent and Admins.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			pickup_address,
			delivery_address,
			weight,
			length,
			width,
			height,
			is_fragile,
			delivery_option,
			rate_id,
			price,
			status,
			delivery_agent_id,
			preferred_delivery_date,
			preferred_delivery_time,
			created_at
		FROM shipments
		WHERE id = ? AND deleted_at IS NULL
	`, query.ShipmentID().String()).Row()

	response, err := scanShipmentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
		}
		return ShipmentResponse{}, err
	}

	visible := response.OwnerID.IsEqual(query.Actor().ID()) ||
		query.Actor().HasRole(actor.Admin) ||
		(response.DeliveryAgentID != nil && response.DeliveryAgentID.IsEqual(query.Actor().ID()))
	if !visible {
		return ShipmentResponse{}, errs.NewForbiddenError(query.Actor().ID().String(), "view shipment")
	}

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipmentRow(row rowScanner) (ShipmentResponse, error) {
	var (
		response ShipmentResponse
		id       uuid.UUID
		ownerID  uuid.UUID
		rateID   uuid.UUID
		agentID  uuid.NullUUID
		date     sql.NullTime
		window   sql.NullString
	)

	err := row.Scan(
		&id,
		&ownerID,
		&response.PickupAddress,
		&response.DeliveryAddress,
		&response.Weight,
		&response.Length,
		&response.Width,
		&response.Height,
		&response.IsFragile,
		&response.DeliveryOption,
		&rateID,
		&response.Price,
		&response.Status,
		&agentID,
		&date,
		&window,
		&response.CreatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if response.RateID, err = kernel.UUIDFromBytes(rateID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if agentID.Valid {
		agent, agentErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if agentErr != nil {
			return ShipmentResponse{}, agentErr
		}
		response.DeliveryAgentID = &agent
	}
	if date.Valid {
		d := date.Time
		response.PreferredDeliveryDate = &d
	}
	if window.Valid {
		w := window.String
		response.PreferredDeliveryTime = &w
	}

	return response, nil
}
