package queries

import (
	"context"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/actor"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of shipment read models.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Admins see everything matching the filters;
// other callers are scoped to shipments they own.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"deleted_at IS NULL"}
	args := make([]any, 0, len(query.Filters())+3)

	for column, value := range query.Filters() {
		// column names come from the allow-list, never from the caller
		conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}

	if !query.Actor().HasRole(actor.Admin) {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, query.Actor().ID().String())
	}

	offset := (query.Page() - 1) * query.Limit()
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
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
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND ")), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		response, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
