package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrDeleteWorkOrderTypeCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderTypeCommand must be created via NewDeleteWorkOrderTypeCommand constructor",
)

// DeleteWorkOrderTypeCommand represents removal of a template. Work orders
// created from it are kept and keep the dangling type id.
type DeleteWorkOrderTypeCommand struct { //nolint:recvcheck //using for validation
	typeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkOrderTypeCommand(typeID kernel.UUID) (DeleteWorkOrderTypeCommand, error) {
	if err := typeID.Validate(); err != nil {
		return DeleteWorkOrderTypeCommand{}, err
	}

	return DeleteWorkOrderTypeCommand{
		typeID: typeID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkOrderTypeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderTypeCommandIsNotConstructed)
}

func (c DeleteWorkOrderTypeCommand) TypeID() kernel.UUID {
	return c.typeID
}
