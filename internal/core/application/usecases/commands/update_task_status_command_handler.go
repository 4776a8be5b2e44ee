package commands

import (
	"context"
)

// UpdateTaskStatusCommandHandler changes task statuses.
type UpdateTaskStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewUpdateTaskStatusCommandHandler(uowFactory WorkOrderUoWFactory) UpdateTaskStatusCommandHandler {
	return UpdateTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the status and persists the order. If either the order or the
// task is unknown the error wraps errs.ErrObjectNotFound and nothing changes.
func (h *UpdateTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatusCommand) error {
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

	orderRepo := uow.WorkOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.UpdateTaskStatus(cmd.TaskID(), cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
