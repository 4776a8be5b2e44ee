package commands

import (
	"errors"
	"maps"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/pkg/guard"
)

var ErrUpdateWorkOrderTypeCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderTypeCommand must be created via NewUpdateWorkOrderTypeCommand constructor",
)

// UpdateWorkOrderTypeCommand represents an edit of a template's name and/or
// quotas. A nil name or nil quotas leaves that field unchanged; task types
// missing from a non-nil quotas map keep their current quota.
type UpdateWorkOrderTypeCommand struct { //nolint:recvcheck //using for validation
	typeID kernel.UUID
	name   *string
	quotas map[kernel.TaskType]int

	guard guard.ConstructorGuard
}

func NewUpdateWorkOrderTypeCommand(
	typeID kernel.UUID,
	name *string,
	quotas map[kernel.TaskType]int,
) (UpdateWorkOrderTypeCommand, error) {
	command := UpdateWorkOrderTypeCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTypeID(typeID),
		command.setQuotas(quotas),
	); err != nil {
		return UpdateWorkOrderTypeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderTypeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderTypeCommandIsNotConstructed)
}

func (c UpdateWorkOrderTypeCommand) TypeID() kernel.UUID {
	return c.typeID
}

// Name returns the new name, nil when the name is kept.
func (c UpdateWorkOrderTypeCommand) Name() *string {
	return c.name
}

// Quotas returns the quota changes per task type, nil when the quotas are kept.
func (c UpdateWorkOrderTypeCommand) Quotas() map[kernel.TaskType]int {
	return maps.Clone(c.quotas)
}

func (c *UpdateWorkOrderTypeCommand) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}

	c.typeID = typeID
	return nil
}

func (c *UpdateWorkOrderTypeCommand) setQuotas(values map[kernel.TaskType]int) error {
	if values == nil {
		return nil
	}

	if _, err := ordertype.NewQuotas(values); err != nil {
		return err
	}

	c.quotas = maps.Clone(values)
	return nil
}
