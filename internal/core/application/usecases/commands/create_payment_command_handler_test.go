package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentCommandHandler_Handle_OnlineSuccess(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), existing.ID(), payment.Online, testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	paymentRepo.On("Update", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Entry")).Return(nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)
	gateway.On("Settle", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Return("txn-42", nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, ownerID, ports.TemplatePaymentConfirmation, mock.Anything).
		Return(nil).Once()
	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, existing.ID(), status.InTransit).
		Return(nil).Once()

	h := commands.NewCreatePaymentCommandHandler(factory, gateway, notifier, publisher, testLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.Completed, created.Status())
	assert.Equal(t, "txn-42", created.TransactionDetails())
	assert.InDelta(t, existing.Price(), created.Amount(), 0.0001)
	assert.Equal(t, status.InTransit, existing.Status())
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreatePaymentCommandHandler_Handle_OnlineSettlementFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), existing.ID(), payment.Online, testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("PaymentRepository").Return(paymentRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway)
	gateway.On("Settle", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Return("card declined", errors.New("card declined")).Once()

	notifier := new(MockNotifier)
	publisher := new(MockStatusPublisher)

	h := commands.NewCreatePaymentCommandHandler(factory, gateway, notifier, publisher, testLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPaymentFailed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	statusRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentCommandHandler_Handle_CODStaysPending(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), existing.ID(), payment.COD, testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Entry")).Return(nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockSettlementGateway) // never consulted for COD
	notifier := new(MockNotifier)
	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, existing.ID(), status.InTransit).
		Return(nil).Once()

	h := commands.NewCreatePaymentCommandHandler(factory, gateway, notifier, publisher, testLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.Pending, created.Status())
	assert.Equal(t, status.InTransit, existing.Status())
	gateway.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentCommandHandler_Handle_DuplicatePayment(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), existing.ID(), payment.COD, testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("PaymentRepository").Return(paymentRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Return(errs.NewDuplicateError("shipmentID", existing.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentCommandHandler(
		factory, new(MockSettlementGateway), new(MockNotifier), new(MockStatusPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateObject)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePaymentCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t, kernel.NewUUID())

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), existing.ID(), payment.Online,
		testActor(t, kernel.NewUUID(), actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentCommandHandler(
		factory, new(MockSettlementGateway), new(MockNotifier), new(MockStatusPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}
