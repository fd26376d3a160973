package commands

import (
	"context"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// RescheduleShipmentCommandHandler changes a shipment's preferred delivery
// date and time window.
type RescheduleShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRescheduleShipmentCommandHandler creates a handler for rescheduling.
func NewRescheduleShipmentCommandHandler(uowFactory ShipmentUoWFactory) RescheduleShipmentCommandHandler {
	return RescheduleShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reschedule command and returns the updated shipment.
// Only the shipment's owner or an Admin may reschedule it.
func (h *RescheduleShipmentCommandHandler) Handle(ctx context.Context, cmd RescheduleShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !target.IsOwnedBy(cmd.Actor().ID()) && !cmd.Actor().HasRole(actor.Admin) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "reschedule shipment")
	}

	if err = target.Reschedule(cmd.Date(), cmd.TimeWindow()); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
