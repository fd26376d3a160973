package commands

import (
	"context"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// AssignAgentCommandHandler assigns a delivery agent to a shipment. The
// agent must actually hold the DeliveryAgent role in the user store; the
// caller's own claims are not enough to vouch for someone else.
type AssignAgentCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	roleChecker ports.RoleChecker
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory ShipmentUoWFactory, roleChecker ports.RoleChecker) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory:  uowFactory,
		roleChecker: roleChecker,
	}
}

// Handle processes the assignment command and returns the updated shipment.
// Assignment is an Admin operation.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().HasRole(actor.Admin) {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "assign delivery agent")
	}

	eligible, err := h.roleChecker.UserHasRole(ctx, cmd.AgentID(), actor.DeliveryAgent)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentID",
			errs.NewObjectNotFoundError("delivery agent", cmd.AgentID()))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = target.AssignAgent(cmd.AgentID()); err != nil {
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
