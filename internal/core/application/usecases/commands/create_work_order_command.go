package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to open a new, empty work order
// for one day from a template.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	date, _ := kernel.NewDate("2024-05-01")
//	cmd, err := NewCreateWorkOrderCommand(orderID, typeID, date)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	typeID  kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand validates the identifiers and the date.
// Whether the template exists is checked by the handler.
func NewCreateWorkOrderCommand(orderID, typeID kernel.UUID, date kernel.Date) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTypeID(typeID),
		command.setDate(date),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new work order will get.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TypeID returns the template the work order is created from.
func (c CreateWorkOrderCommand) TypeID() kernel.UUID {
	return c.typeID
}

// Date returns the working day of the order.
func (c CreateWorkOrderCommand) Date() kernel.Date {
	return c.date
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWorkOrderCommand) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}

	c.typeID = typeID
	return nil
}

func (c *CreateWorkOrderCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}
