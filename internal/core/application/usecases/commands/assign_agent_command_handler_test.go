package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t, kernel.NewUUID())
	agentID := kernel.NewUUID()

	cmd, err := commands.NewAssignAgentCommand(
		existing.ID(), agentID, testActor(t, kernel.NewUUID(), actor.Admin))
	require.NoError(t, err)

	roleChecker := new(MockRoleChecker)
	roleChecker.On("UserHasRole", mock.Anything, agentID, actor.DeliveryAgent).Return(true, nil).Once()

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory, roleChecker)
	assigned, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, assigned.DeliveryAgent())
	assert.True(t, assigned.DeliveryAgent().IsEqual(agentID))
	roleChecker.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing := testShipment(t, ownerID)

	// even the owner cannot assign agents
	cmd, err := commands.NewAssignAgentCommand(
		existing.ID(), kernel.NewUUID(), testActor(t, ownerID, actor.Customer))
	require.NoError(t, err)

	h := commands.NewAssignAgentCommandHandler(new(MockShipmentUoWFactory), new(MockRoleChecker))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAssignAgentCommandHandler_Handle_IneligibleAgent(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()

	cmd, err := commands.NewAssignAgentCommand(
		kernel.NewUUID(), agentID, testActor(t, kernel.NewUUID(), actor.Admin))
	require.NoError(t, err)

	roleChecker := new(MockRoleChecker)
	roleChecker.On("UserHasRole", mock.Anything, agentID, actor.DeliveryAgent).Return(false, nil).Once()

	h := commands.NewAssignAgentCommandHandler(new(MockShipmentUoWFactory), roleChecker)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	roleChecker.AssertExpectations(t)
}
