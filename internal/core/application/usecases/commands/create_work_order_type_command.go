package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/pkg/guard"
)

var ErrCreateWorkOrderTypeCommandIsNotConstructed = errors.New(
	"CreateWorkOrderTypeCommand must be created via NewCreateWorkOrderTypeCommand constructor",
)

// CreateWorkOrderTypeCommand represents a request to add a template. Omitted
// fields take the administration defaults: ordertype.DefaultName, quotas of 5
// and 5, every task type allowed and ordertype.DefaultCreatorRole.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderTypeCommand(kernel.NewUUID(), "", nil, nil, nil)
//	// cmd describes the default template
type CreateWorkOrderTypeCommand struct { //nolint:recvcheck //using for validation
	typeID           kernel.UUID
	name             string
	quotas           ordertype.Quotas
	allowedTaskTypes []kernel.TaskType
	creatorRoles     []string

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderTypeCommand fills defaults and validates quotas. A nil
// quotas map means default quotas; a non-nil map is taken as is, missing
// task types count as zero.
func NewCreateWorkOrderTypeCommand(
	typeID kernel.UUID,
	name string,
	quotas map[kernel.TaskType]int,
	allowedTaskTypes []kernel.TaskType,
	creatorRoles []string,
) (CreateWorkOrderTypeCommand, error) {
	command := CreateWorkOrderTypeCommand{
		name:             ordertype.DefaultName,
		quotas:           ordertype.DefaultQuotas(),
		allowedTaskTypes: kernel.AllTaskTypes(),
		creatorRoles:     []string{ordertype.DefaultCreatorRole},
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTypeID(typeID),
		command.setQuotas(quotas),
	); err != nil {
		return CreateWorkOrderTypeCommand{}, err
	}

	if name = strings.TrimSpace(name); name != "" {
		command.name = name
	}
	if len(allowedTaskTypes) > 0 {
		command.allowedTaskTypes = allowedTaskTypes
	}
	if len(creatorRoles) > 0 {
		command.creatorRoles = creatorRoles
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderTypeCommandIsNotConstructed)
}

func (c CreateWorkOrderTypeCommand) TypeID() kernel.UUID {
	return c.typeID
}

func (c CreateWorkOrderTypeCommand) Name() string {
	return c.name
}

func (c CreateWorkOrderTypeCommand) Quotas() ordertype.Quotas {
	return c.quotas
}

func (c CreateWorkOrderTypeCommand) AllowedTaskTypes() []kernel.TaskType {
	return c.allowedTaskTypes
}

func (c CreateWorkOrderTypeCommand) CreatorRoles() []string {
	return c.creatorRoles
}

func (c *CreateWorkOrderTypeCommand) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}

	c.typeID = typeID
	return nil
}

func (c *CreateWorkOrderTypeCommand) setQuotas(values map[kernel.TaskType]int) error {
	if values == nil {
		return nil
	}

	quotas, err := ordertype.NewQuotas(values)
	if err != nil {
		return err
	}

	c.quotas = quotas
	return nil
}
