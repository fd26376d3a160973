package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedgerEntry(t *testing.T, shipmentID kernel.UUID, name status.Name) *status.Entry {
	t.Helper()
	entry, err := status.NewEntry(kernel.NewUUID(), shipmentID, name)
	require.NoError(t, err)
	return entry
}

func TestRetractStatusCommandHandler_Handle_RecomputesProjection(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	existing := testShipment(t, kernel.NewUUID())
	require.NoError(t, existing.AssignAgent(agentID))
	require.NoError(t, existing.ProjectStatus(status.OutForDelivery))

	retracted := newLedgerEntry(t, existing.ID(), status.OutForDelivery)
	previous := newLedgerEntry(t, existing.ID(), status.InTransit)

	cmd, err := commands.NewRetractStatusCommand(retracted.ID(), testActor(t, agentID, actor.DeliveryAgent))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("ShipmentRepository").Return(repo)
	statusRepo.On("Get", mock.Anything, retracted.ID()).Return(retracted, nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Retract", mock.Anything, retracted.ID()).Return(nil).Once()
	statusRepo.On("GetLatest", mock.Anything, existing.ID()).Return(previous, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetractStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, status.InTransit, existing.Status())
	uow.AssertExpectations(t)
}

func TestRetractStatusCommandHandler_Handle_EmptyLedgerDefaultsPending(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	existing := testShipment(t, kernel.NewUUID())
	require.NoError(t, existing.AssignAgent(agentID))
	require.NoError(t, existing.ProjectStatus(status.InTransit))

	retracted := newLedgerEntry(t, existing.ID(), status.InTransit)

	cmd, err := commands.NewRetractStatusCommand(retracted.ID(), testActor(t, agentID, actor.DeliveryAgent))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("ShipmentRepository").Return(repo)
	statusRepo.On("Get", mock.Anything, retracted.ID()).Return(retracted, nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Retract", mock.Anything, retracted.ID()).Return(nil).Once()
	statusRepo.On("GetLatest", mock.Anything, existing.ID()).
		Return(nil, errs.NewObjectNotFoundError("status", existing.ID())).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetractStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, status.Pending, existing.Status())
}

func TestRetractStatusCommandHandler_Handle_NonCurrentEntrySkipsRecompute(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	existing := testShipment(t, kernel.NewUUID())
	require.NoError(t, existing.AssignAgent(agentID))
	require.NoError(t, existing.ProjectStatus(status.OutForDelivery))

	retracted := newLedgerEntry(t, existing.ID(), status.InTransit) // older entry

	cmd, err := commands.NewRetractStatusCommand(retracted.ID(), testActor(t, agentID, actor.DeliveryAgent))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("ShipmentRepository").Return(repo)
	statusRepo.On("Get", mock.Anything, retracted.ID()).Return(retracted, nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	statusRepo.On("Retract", mock.Anything, retracted.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetractStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, status.OutForDelivery, existing.Status())
	statusRepo.AssertNotCalled(t, "GetLatest", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRetractStatusCommandHandler_Handle_OwnerForbidden(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)
	retracted := newLedgerEntry(t, existing.ID(), status.InTransit)

	// owners cannot rewrite the ledger, only agents and admins
	cmd, err := commands.NewRetractStatusCommand(retracted.ID(), testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockStatusUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo)
	uow.On("ShipmentRepository").Return(repo)
	statusRepo.On("Get", mock.Anything, retracted.ID()).Return(retracted, nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetractStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	statusRepo.AssertNotCalled(t, "Retract", mock.Anything, mock.Anything)
}
