package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendStatusCommandHandler_Handle_AgentAppends(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	existing := testShipment(t, kernel.NewUUID())
	require.NoError(t, existing.AssignAgent(agentID))

	cmd, err := commands.NewAppendStatusCommand(
		kernel.NewUUID(), existing.ID(), status.OutForDelivery,
		testActor(t, agentID, actor.DeliveryAgent))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("StatusRepository").Return(statusRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Entry")).Return(nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, existing.OwnerID(), ports.TemplateStatusUpdate, mock.Anything).
		Return(nil).Once()
	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, existing.ID(), status.OutForDelivery).
		Return(nil).Once()

	h := commands.NewAppendStatusCommandHandler(factory, notifier, publisher, testLogger())
	entry, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.OutForDelivery, entry.Name())
	assert.Equal(t, status.OutForDelivery, existing.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAppendStatusCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewAppendStatusCommand(
		kernel.NewUUID(), existing.ID(), status.InTransit,
		testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("StatusRepository").Return(statusRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Entry")).Return(nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, ownerID, ports.TemplateStatusUpdate, mock.Anything).
		Return(errors.New("smtp down")).Once()
	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, existing.ID(), status.InTransit).
		Return(errors.New("broker down")).Once()

	h := commands.NewAppendStatusCommandHandler(factory, notifier, publisher, testLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestAppendStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t, kernel.NewUUID())

	cmd, err := commands.NewAppendStatusCommand(
		kernel.NewUUID(), existing.ID(), status.InTransit,
		testActor(t, kernel.NewUUID(), actor.Customer)) // stranger
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusCommandHandler(
		factory, new(MockNotifier), new(MockStatusPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAppendStatusCommandHandler_Handle_LedgerWriteFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	cmd, err := commands.NewAppendStatusCommand(
		kernel.NewUUID(), existing.ID(), status.InTransit,
		testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("StatusRepository").Return(statusRepo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Entry")).
		Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	publisher := new(MockStatusPublisher)

	h := commands.NewAppendStatusCommandHandler(factory, notifier, publisher, testLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
