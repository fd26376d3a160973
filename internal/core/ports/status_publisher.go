package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
)

// StatusPublisher announces status transitions to interested consumers
// (tracking pages, analytics) on a message bus. Publishing happens after
// commit and is best-effort: a publish failure is logged, never propagated.
type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, shipmentID kernel.UUID, name status.Name) error
}
