package commands

import (
	"context"

	"workorders/internal/core/domain/model/ordertype"
)

// CreateWorkOrderTypeCommandHandler stores new templates. A template whose
// quotas sum to zero is rejected by the aggregate before anything is written.
type CreateWorkOrderTypeCommandHandler struct {
	uowFactory WorkOrderTypeUoWFactory
}

func NewCreateWorkOrderTypeCommandHandler(uowFactory WorkOrderTypeUoWFactory) CreateWorkOrderTypeCommandHandler {
	return CreateWorkOrderTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateWorkOrderTypeCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wt, err := ordertype.NewWorkOrderType(
		cmd.TypeID(),
		cmd.Name(),
		cmd.Quotas(),
		cmd.AllowedTaskTypes(),
		cmd.CreatorRoles(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderTypeRepository().Add(ctx, wt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
