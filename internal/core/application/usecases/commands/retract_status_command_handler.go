package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"
)

// RetractStatusCommandHandler retracts a status ledger entry. If the
// retracted entry backed the shipment's current projected status, the
// projection is recomputed from the next most recent surviving entry,
// defaulting to Pending when the ledger becomes empty. The retraction and
// the recomputation commit in one transaction.
type RetractStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewRetractStatusCommandHandler creates a handler for status retraction.
func NewRetractStatusCommandHandler(uowFactory StatusUoWFactory) RetractStatusCommandHandler {
	return RetractStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retraction command. Only the shipment's assigned
// delivery agent or an Admin may retract entries.
func (h *RetractStatusCommandHandler) Handle(ctx context.Context, cmd RetractStatusCommand) error {
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

	entry, err := uow.StatusRepository().Get(ctx, cmd.StatusID())
	if err != nil {
		return err
	}

	target, err := uow.ShipmentRepository().Get(ctx, entry.ShipmentID())
	if err != nil {
		return err
	}

	allowed := target.IsAssignedAgent(cmd.Actor().ID()) || cmd.Actor().HasRole(actor.Admin)
	if !allowed {
		return errs.NewForbiddenError(cmd.Actor().ID().String(), "retract status")
	}

	if err = uow.StatusRepository().Retract(ctx, cmd.StatusID()); err != nil {
		return err
	}

	// The projection only moves when the retracted entry was backing it.
	if target.Status() == entry.Name() {
		current := status.Pending
		latest, err := uow.StatusRepository().GetLatest(ctx, entry.ShipmentID())
		switch {
		case err == nil:
			current = latest.Name()
		case errors.Is(err, errs.ErrObjectNotFound):
			// ledger is empty now
		default:
			return err
		}

		if err = target.ProjectStatus(current); err != nil {
			return err
		}

		if err = uow.ShipmentRepository().Update(ctx, target); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
