package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrAssignPerformerCommandIsNotConstructed = errors.New(
	"AssignPerformerCommand must be created via NewAssignPerformerCommand constructor",
)

// AssignPerformerCommand represents a request to put a performer in charge of
// a work order, replacing any previous one.
type AssignPerformerCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	performerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignPerformerCommand(orderID, performerID kernel.UUID) (AssignPerformerCommand, error) {
	command := AssignPerformerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPerformerID(performerID),
	); err != nil {
		return AssignPerformerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPerformerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPerformerCommandIsNotConstructed)
}

func (c AssignPerformerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignPerformerCommand) PerformerID() kernel.UUID {
	return c.performerID
}

func (c *AssignPerformerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPerformerCommand) setPerformerID(performerID kernel.UUID) error {
	if err := performerID.Validate(); err != nil {
		return err
	}

	c.performerID = performerID
	return nil
}
