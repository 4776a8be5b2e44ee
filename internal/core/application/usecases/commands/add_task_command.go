package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var (
	ErrAddTaskCommandIsNotConstructed = errors.New(
		"AddTaskCommand must be created via NewAddTaskCommand constructor",
	)
	ErrAddressIsRequired    = errs.NewValueIsRequiredError("address")
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("clientName")
)

// AddTaskCommand represents a request to append a task to a work order.
// The task type is not checked against the template's allowed types and the
// quota is not a ceiling: over-quota work is recorded as it happens.
type AddTaskCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	taskID  kernel.UUID
	data    workorder.TaskData

	guard guard.ConstructorGuard
}

// NewAddTaskCommand validates identifiers, task type and the required
// address and client name. Description is optional.
func NewAddTaskCommand(
	orderID kernel.UUID,
	taskID kernel.UUID,
	taskType kernel.TaskType,
	address string,
	clientName string,
	description string,
) (AddTaskCommand, error) {
	command := AddTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTaskID(taskID),
		command.setTaskType(taskType),
		command.setAddress(address),
		command.setClientName(clientName),
	); err != nil {
		return AddTaskCommand{}, err
	}
	command.data.Description = strings.TrimSpace(description)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskCommandIsNotConstructed)
}

func (c AddTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Data returns the task attributes as the domain expects them.
func (c AddTaskCommand) Data() workorder.TaskData {
	return c.data
}

func (c *AddTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AddTaskCommand) setTaskType(taskType kernel.TaskType) error {
	if err := taskType.Validate(); err != nil {
		return err
	}

	c.data.Type = taskType
	return nil
}

func (c *AddTaskCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}

	c.data.Address = address
	return nil
}

func (c *AddTaskCommand) setClientName(clientName string) error {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.data.ClientName = clientName
	return nil
}
