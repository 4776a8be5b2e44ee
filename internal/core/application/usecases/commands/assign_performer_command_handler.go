package commands

import (
	"context"
)

// AssignPerformerCommandHandler assigns performers to work orders. Both the
// order and the performer must exist. Assigning the same performer twice
// leaves the order as it was.
type AssignPerformerCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignPerformerCommandHandler(uowFactory UoWFactory) AssignPerformerCommandHandler {
	return AssignPerformerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AssignPerformerCommandHandler) Handle(ctx context.Context, cmd AssignPerformerCommand) error {
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

	if _, err = uow.PerformerRepository().Get(ctx, cmd.PerformerID()); err != nil {
		return err
	}

	if err = order.AssignPerformer(cmd.PerformerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
