package queries

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// paymentFilterColumns is the allow-list of filterable payment attributes.
// Filter keys outside the list are silently ignored, not errors.
var paymentFilterColumns = map[string]string{
	"method":      "method",
	"status":      "status",
	"user_id":     "user_id",
	"shipment_id": "shipment_id",
}

// ListPaymentsQuery retrieves a page of payments matching the given filters.
// Listing payments is an Admin operation.
type ListPaymentsQuery struct {
	filters map[string]string
	page    int
	limit   int
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery creates a query to list payments.
func NewListPaymentsQuery(filters map[string]string, page, limit int, queryActor actor.Actor) (ListPaymentsQuery, error) {
	if err := queryActor.Validate(); err != nil {
		return ListPaymentsQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if page < 0 || limit < 0 {
		return ListPaymentsQuery{}, errs.NewValueIsInvalidError("pagination")
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	allowed := make(map[string]string, len(filters))
	for key, value := range filters {
		if column, ok := paymentFilterColumns[key]; ok {
			allowed[column] = value
		}
	}

	return ListPaymentsQuery{
		filters: allowed,
		page:    page,
		limit:   limit,
		actor:   queryActor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// Filters returns the allow-listed filters keyed by column name.
func (q ListPaymentsQuery) Filters() map[string]string {
	return q.filters
}

// Page returns the 1-based page number.
func (q ListPaymentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListPaymentsQuery) Limit() int {
	return q.limit
}

// Actor returns the authenticated caller.
func (q ListPaymentsQuery) Actor() actor.Actor {
	return q.actor
}
