package queries

import (
	"context"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListPaymentsQueryHandler retrieves pages of payment read models.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentsQueryHandler creates a handler for payment listing.
func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle executes the query. Only Admins may list payments.
func (h ListPaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().HasRole(actor.Admin) {
		return nil, errs.NewForbiddenError(query.Actor().ID().String(), "list payments")
	}

	conditions := []string{"1=1"}
	args := make([]any, 0, len(query.Filters())+2)

	for column, value := range query.Filters() {
		// column names come from the allow-list, never from the caller
		conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}

	offset := (query.Page() - 1) * query.Limit()
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
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
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND ")), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		response, scanErr := scanPaymentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
