package commands

import (
	"context"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/pkg/errs"
)

// DeleteShipmentCommandHandler soft-deletes a shipment. The row survives for
// payment and report history; it just stops appearing in reads.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Only the shipment's owner or an
// Admin may delete it.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !target.IsOwnedBy(cmd.Actor().ID()) && !cmd.Actor().HasRole(actor.Admin) {
		return errs.NewForbiddenError(cmd.Actor().ID().String(), "delete shipment")
	}

	if err = uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
