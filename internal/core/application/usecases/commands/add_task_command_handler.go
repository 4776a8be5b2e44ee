package commands

import (
	"context"
)

// AddTaskCommandHandler appends tasks to existing work orders.
type AddTaskCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewAddTaskCommandHandler(uowFactory WorkOrderUoWFactory) AddTaskCommandHandler {
	return AddTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, appends a NEW task after the existing ones and
// persists the order. An unknown order yields an errs.ErrObjectNotFound error.
func (h *AddTaskCommandHandler) Handle(ctx context.Context, cmd AddTaskCommand) error {
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

	if _, err = order.AddTask(cmd.TaskID(), cmd.Data()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
