package commands

import (
	"context"
)

// UpdateWorkOrderTypeCommandHandler edits templates. Work orders referencing
// the template pick up new quotas on their next read.
type UpdateWorkOrderTypeCommandHandler struct {
	uowFactory WorkOrderTypeUoWFactory
}

func NewUpdateWorkOrderTypeCommandHandler(uowFactory WorkOrderTypeUoWFactory) UpdateWorkOrderTypeCommandHandler {
	return UpdateWorkOrderTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateWorkOrderTypeCommandHandler) Handle(ctx context.Context, cmd UpdateWorkOrderTypeCommand) error {
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
	wt, err := typeRepo.Get(ctx, cmd.TypeID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = wt.Rename(*name); err != nil {
			return err
		}
	}

	if changes := cmd.Quotas(); changes != nil {
		quotas, mergeErr := wt.Quotas().Merge(changes)
		if mergeErr != nil {
			return mergeErr
		}
		if err = wt.ChangeQuotas(quotas); err != nil {
			return err
		}
	}

	if err = typeRepo.Update(ctx, wt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
