package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrPaymentFailed is returned when the settlement gateway declines an
// online payment. The declined payment does not persist: the transaction it
// was created in rolls back.
var ErrPaymentFailed = errors.New("payment settlement failed")

// CreatePaymentCommandHandler drives the payment state machine for new
// payments. Both method branches run inside one transaction together with
// their status ledger writes:
//
//   - Online: create the payment Pending, invoke the settlement gateway;
//     on success mark it Completed, append an "In Transit" ledger entry and
//     commit, then send a confirmation notification; on settlement failure
//     the whole transaction rolls back and the error surfaces to the caller.
//   - COD: create the payment Pending (awaiting cash collection), append an
//     "In Transit" ledger entry and commit. Collection is confirmed later by
//     the assigned agent via CompleteCODPaymentCommand.
//
// At most one payment may exist per shipment; a concurrent double-create is
// resolved by the repository's unique constraint, so exactly one caller wins
// and the other receives a DuplicateError.
type CreatePaymentCommandHandler struct {
	uowFactory        PaymentUoWFactory
	settlementGateway ports.SettlementGateway
	notifier          ports.Notifier
	statusPublisher   ports.StatusPublisher
	logger            *slog.Logger
}

// NewCreatePaymentCommandHandler creates a handler for payment creation.
func NewCreatePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	settlementGateway ports.SettlementGateway,
	notifier ports.Notifier,
	statusPublisher ports.StatusPublisher,
	logger *slog.Logger,
) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory:        uowFactory,
		settlementGateway: settlementGateway,
		notifier:          notifier,
		statusPublisher:   statusPublisher,
		logger:            logger,
	}
}

// Handle processes the payment creation command and returns the payment in
// its post-transition state. Only the shipment's owner or an Admin may open
// a payment.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
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
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "create payment")
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(), cmd.ShipmentID(), cmd.Actor().ID(), target.Price(), cmd.Method())
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return nil, err
	}

	if cmd.Method() == payment.Online {
		if err = h.settleOnline(ctx, uow, newPayment); err != nil {
			return nil, err
		}
	}

	if err = h.appendInTransit(ctx, uow, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.announce(ctx, target, newPayment)
	return newPayment, nil
}

// settleOnline charges the payment through the gateway. A failed charge
// fails the whole operation: the surrounding transaction rolls back, so no
// payment row survives a declined settlement.
func (h *CreatePaymentCommandHandler) settleOnline(ctx context.Context, uow PaymentUoW, p *payment.Payment) error {
	details, err := h.settlementGateway.Settle(ctx, p)
	if err != nil {
		if failErr := p.Fail(details); failErr != nil {
			return failErr
		}
		return fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	if err = p.Complete(details); err != nil {
		return err
	}

	return uow.PaymentRepository().Update(ctx, p)
}

func (h *CreatePaymentCommandHandler) appendInTransit(ctx context.Context, uow PaymentUoW, target *shipment.Shipment) error {
	entry, err := status.NewEntry(kernel.NewUUID(), target.ID(), status.InTransit)
	if err != nil {
		return err
	}

	if err = uow.StatusRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = target.ProjectStatus(status.InTransit); err != nil {
		return err
	}

	return uow.ShipmentRepository().Update(ctx, target)
}

func (h *CreatePaymentCommandHandler) announce(ctx context.Context, target *shipment.Shipment, p *payment.Payment) {
	if p.Status() == payment.Completed {
		if err := h.notifier.Send(ctx, p.UserID(), ports.TemplatePaymentConfirmation, map[string]string{
			"shipment_id": target.ID().String(),
			"payment_id":  p.ID().String(),
		}); err != nil {
			h.logger.Warn("payment confirmation failed",
				"payment_id", p.ID().String(), "error", err)
		}
	}

	if err := h.statusPublisher.PublishStatusChanged(ctx, target.ID(), status.InTransit); err != nil {
		h.logger.Warn("status publish failed",
			"shipment_id", target.ID().String(), "error", err)
	}
}
