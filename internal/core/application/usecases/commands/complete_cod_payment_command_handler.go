package commands

import (
	"context"
	"log/slog"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// CompleteCODPaymentCommandHandler completes a cash-on-delivery payment.
// The payment transitions Pending -> Completed and a terminal "Delivered"
// ledger entry is appended, both in one transaction: a reader never sees a
// completed COD payment without its Delivered entry or vice versa.
type CompleteCODPaymentCommandHandler struct {
	uowFactory      PaymentUoWFactory
	notifier        ports.Notifier
	statusPublisher ports.StatusPublisher
	logger          *slog.Logger
}

// NewCompleteCODPaymentCommandHandler creates a handler for COD completion.
func NewCompleteCODPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier ports.Notifier,
	statusPublisher ports.StatusPublisher,
	logger *slog.Logger,
) CompleteCODPaymentCommandHandler {
	return CompleteCODPaymentCommandHandler{
		uowFactory:      uowFactory,
		notifier:        notifier,
		statusPublisher: statusPublisher,
		logger:          logger,
	}
}

// Handle processes the COD completion command and returns the completed
// payment. Only the shipment's assigned delivery agent may confirm
// collection; the payment must be a pending COD payment.
func (h *CompleteCODPaymentCommandHandler) Handle(ctx context.Context, cmd CompleteCODPaymentCommand) (*payment.Payment, error) {
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

	target, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if target.Method() != payment.COD {
		return nil, errs.NewValueIsInvalidError("payment method")
	}

	shipmentAggregate, err := uow.ShipmentRepository().Get(ctx, target.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !shipmentAggregate.IsAssignedAgent(cmd.Actor().ID()) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "complete COD payment")
	}

	if err = target.Complete(cmd.TransactionDetails()); err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	entry, err := status.NewEntry(kernel.NewUUID(), target.ShipmentID(), status.Delivered)
	if err != nil {
		return nil, err
	}

	if err = uow.StatusRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = shipmentAggregate.ProjectStatus(status.Delivered); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.announce(ctx, target)
	return target, nil
}

func (h *CompleteCODPaymentCommandHandler) announce(ctx context.Context, p *payment.Payment) {
	if err := h.notifier.Send(ctx, p.UserID(), ports.TemplatePaymentConfirmation, map[string]string{
		"shipment_id": p.ShipmentID().String(),
		"payment_id":  p.ID().String(),
	}); err != nil {
		h.logger.Warn("payment confirmation failed",
			"payment_id", p.ID().String(), "error", err)
	}

	if err := h.statusPublisher.PublishStatusChanged(ctx, p.ShipmentID(), status.Delivered); err != nil {
		h.logger.Warn("status publish failed",
			"shipment_id", p.ShipmentID().String(), "error", err)
	}
}
