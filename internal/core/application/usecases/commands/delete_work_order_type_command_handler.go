package commands

import (
	"context"
)

// DeleteWorkOrderTypeCommandHandler removes templates without cascading to
// work orders.
type DeleteWorkOrderTypeCommandHandler struct {
	uowFactory WorkOrderTypeUoWFactory
}

func NewDeleteWorkOrderTypeCommandHandler(uowFactory WorkOrderTypeUoWFactory) DeleteWorkOrderTypeCommandHandler {
	return DeleteWorkOrderTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the template. An unknown id yields an errs.ErrObjectNotFound error.
func (h *DeleteWorkOrderTypeCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	typeRepo := uow.WorkOrderTypeRepository()
	if _, err := typeRepo.Get(ctx, cmd.TypeID()); err != nil {
		return err
	}

	if err := typeRepo.Delete(ctx, cmd.TypeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
