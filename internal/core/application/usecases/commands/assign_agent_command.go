package commands

import (
	"errors"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to assign a delivery agent to a
// shipment.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	agentID    kernel.UUID
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign a delivery agent.
func NewAssignAgentCommand(shipmentID, agentID kernel.UUID, commandActor actor.Actor) (AssignAgentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AssignAgentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := agentID.Validate(); err != nil {
		return AssignAgentCommand{}, errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	if err := commandActor.Validate(); err != nil {
		return AssignAgentCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return AssignAgentCommand{
		shipmentID: shipmentID,
		agentID:    agentID,
		actor:      commandActor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to assign.
func (c AssignAgentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AgentID returns the user id of the delivery agent to assign.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Actor returns the authenticated caller requesting the assignment.
func (c AssignAgentCommand) Actor() actor.Actor {
	return c.actor
}
