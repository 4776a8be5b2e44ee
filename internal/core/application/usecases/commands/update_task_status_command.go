package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/guard"
)

var ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
)

// UpdateTaskStatusCommand represents a request to set the status of one task.
// Any status may follow any other, DONE can be reopened as NEW.
type UpdateTaskStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	taskID  kernel.UUID
	status  workorder.TaskStatus

	guard guard.ConstructorGuard
}

func NewUpdateTaskStatusCommand(
	orderID kernel.UUID,
	taskID kernel.UUID,
	status workorder.TaskStatus,
) (UpdateTaskStatusCommand, error) {
	command := UpdateTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTaskID(taskID),
		command.setStatus(status),
	); err != nil {
		return UpdateTaskStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

func (c UpdateTaskStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c UpdateTaskStatusCommand) Status() workorder.TaskStatus {
	return c.status
}

func (c *UpdateTaskStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTaskStatusCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *UpdateTaskStatusCommand) setStatus(status workorder.TaskStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
