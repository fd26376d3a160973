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

// GetPaymentByIDQueryHandler retrieves a single payment read model.
type GetPaymentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentByIDQueryHandler creates a handler for payment retrieval.
func NewGetPaymentByIDQueryHandler(db *gorm.DB) GetPaymentByIDQueryHandler {
	return GetPaymentByIDQueryHandler{db: db}
}

// Handle executes the query. A payment is visible only to its payer and
// Admins.
func (h GetPaymentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentByIDQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			user_id,
			amount,
			method,
			status,
			transaction_details,
			created_at
		FROM payments
		WHERE id = ?
	`, query.PaymentID().String()).Row()

	response, err := scanPaymentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID())
		}
		return PaymentResponse{}, err
	}

	if !response.UserID.IsEqual(query.Actor().ID()) && !query.Actor().HasRole(actor.Admin) {
		return PaymentResponse{}, errs.NewForbiddenError(query.Actor().ID().String(), "view payment")
	}

	return response, nil
}

func scanPaymentRow(row rowScanner) (PaymentResponse, error) {
	var (
		response   PaymentResponse
		id         uuid.UUID
		shipmentID uuid.UUID
		userID     uuid.UUID
	)

	err := row.Scan(
		&id,
		&shipmentID,
		&userID,
		&response.Amount,
		&response.Method,
		&response.Status,
		&response.TransactionDetails,
		&response.CreatedAt,
	)
	if err != nil {
		return PaymentResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PaymentResponse{}, err
	}
	if response.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
		return PaymentResponse{}, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return PaymentResponse{}, err
	}

	return response, nil
}
