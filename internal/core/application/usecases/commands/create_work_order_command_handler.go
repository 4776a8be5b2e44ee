package commands

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
)

// CreateWorkOrderCommandHandler opens work orders. The template must exist;
// the number is drawn from the transactional sequence so it stays unique
// when orders are created concurrently.
type CreateWorkOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the template, takes the next number and stores the empty
// order. If the template is not found the returned error wraps
// errs.ErrObjectNotFound and nothing is written.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
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

	if _, err := uow.WorkOrderTypeRepository().Get(ctx, cmd.TypeID()); err != nil {
		return err
	}

	seq, err := uow.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
	if err != nil {
		return err
	}

	number, err := workorder.NewNumber(seq)
	if err != nil {
		return err
	}

	order, err := workorder.NewWorkOrder(cmd.OrderID(), number, cmd.Date(), cmd.TypeID())
	if err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
