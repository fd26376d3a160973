package queries

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// shipmentFilterColumns is the allow-list of filterable shipment attributes.
// Filter keys outside the list are silently ignored, not errors.
var shipmentFilterColumns = map[string]string{
	"status":          "status",
	"delivery_option": "delivery_option",
	"owner_id":        "owner_id",
	"is_fragile":      "is_fragile",
}

// ListShipmentsQuery retrieves a page of shipments matching the given
// filters. Non-admin callers only ever see their own shipments, whatever
// filters they pass.
type ListShipmentsQuery struct {
	filters map[string]string
	page    int
	limit   int
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query to list shipments. Page numbering is
// 1-based; a zero page or limit falls back to the defaults.
func NewListShipmentsQuery(filters map[string]string, page, limit int, queryActor actor.Actor) (ListShipmentsQuery, error) {
	if err := queryActor.Validate(); err != nil {
		return ListShipmentsQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if page < 0 || limit < 0 {
		return ListShipmentsQuery{}, errs.NewValueIsInvalidError("pagination")
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
		if column, ok := shipmentFilterColumns[key]; ok {
			allowed[column] = value
		}
	}

	return ListShipmentsQuery{
		filters: allowed,
		page:    page,
		limit:   limit,
		actor:   queryActor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Filters returns the allow-listed filters keyed by column name.
func (q ListShipmentsQuery) Filters() map[string]string {
	return q.filters
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// Actor returns the authenticated caller.
func (q ListShipmentsQuery) Actor() actor.Actor {
	return q.actor
}
