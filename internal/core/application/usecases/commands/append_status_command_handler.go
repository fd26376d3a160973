package commands

import (
	"context"
	"log/slog"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// AppendStatusCommandHandler appends an entry to a shipment's status ledger
// and updates the shipment's projected status in the same transaction.
//
// After commit it notifies the shipment owner and publishes the transition
// to the status topic. Both side effects are best-effort: failures are
// logged, never propagated, and never roll back the committed ledger write.
type AppendStatusCommandHandler struct {
	uowFactory      StatusUoWFactory
	notifier        ports.Notifier
	statusPublisher ports.StatusPublisher
	logger          *slog.Logger
}

// NewAppendStatusCommandHandler creates a handler for status appends.
func NewAppendStatusCommandHandler(
	uowFactory StatusUoWFactory,
	notifier ports.Notifier,
	statusPublisher ports.StatusPublisher,
	logger *slog.Logger,
) AppendStatusCommandHandler {
	return AppendStatusCommandHandler{
		uowFactory:      uowFactory,
		notifier:        notifier,
		statusPublisher: statusPublisher,
		logger:          logger,
	}
}

// Handle processes the append command and returns the new ledger entry.
// The caller must be the shipment's owner, its assigned delivery agent, or
// an Admin.
func (h *AppendStatusCommandHandler) Handle(ctx context.Context, cmd AppendStatusCommand) (*status.Entry, error) {
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

	allowed := target.IsOwnedBy(cmd.Actor().ID()) ||
		target.IsAssignedAgent(cmd.Actor().ID()) ||
		cmd.Actor().HasRole(actor.Admin)
	if !allowed {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "append status")
	}

	entry, err := status.NewEntry(cmd.StatusID(), cmd.ShipmentID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = uow.StatusRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = target.ProjectStatus(cmd.Name()); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.announce(ctx, target.OwnerID(), cmd)
	return entry, nil
}

func (h *AppendStatusCommandHandler) announce(ctx context.Context, ownerID kernel.UUID, cmd AppendStatusCommand) {
	if err := h.notifier.Send(ctx, ownerID, ports.TemplateStatusUpdate, map[string]string{
		"shipment_id": cmd.ShipmentID().String(),
		"status":      cmd.Name().String(),
	}); err != nil {
		h.logger.Warn("status notification failed",
			"shipment_id", cmd.ShipmentID().String(), "error", err)
	}

	if err := h.statusPublisher.PublishStatusChanged(ctx, cmd.ShipmentID(), cmd.Name()); err != nil {
		h.logger.Warn("status publish failed",
			"shipment_id", cmd.ShipmentID().String(), "error", err)
	}
}
