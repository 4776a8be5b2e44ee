package queries

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
)

// GetWorkOrderQueryHandler builds the order details view.
type GetWorkOrderQueryHandler struct {
	orders     WorkOrderReader
	types      WorkOrderTypeReader
	performers PerformerReader
	calculator services.CompletionCalculator
}

func NewGetWorkOrderQueryHandler(
	orders WorkOrderReader,
	types WorkOrderTypeReader,
	performers PerformerReader,
) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{
		orders:     orders,
		types:      types,
		performers: performers,
		calculator: services.NewCompletionCalculator(),
	}
}

// Handle returns an errs.ErrObjectNotFound error for an unknown order. A
// missing template or performer is not an error.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (WorkOrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return WorkOrderDetailsResponse{}, err
	}

	order, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return WorkOrderDetailsResponse{}, err
	}

	types := map[kernel.UUID]*ordertype.WorkOrderType{}
	wt, err := h.types.Get(ctx, order.TypeID())
	switch {
	case err == nil:
		types[wt.ID()] = wt
	case !errors.Is(err, errs.ErrObjectNotFound):
		return WorkOrderDetailsResponse{}, err
	}

	performers := map[kernel.UUID]*performer.Performer{}
	if id := order.PerformerID(); id != nil {
		p, pErr := h.performers.Get(ctx, *id)
		switch {
		case pErr == nil:
			performers[p.ID()] = p
		case !errors.Is(pErr, errs.ErrObjectNotFound):
			return WorkOrderDetailsResponse{}, pErr
		}
	}

	summary, err := summarize(h.calculator, order, types, performers)
	if err != nil {
		return WorkOrderDetailsResponse{}, err
	}

	details := WorkOrderDetailsResponse{
		WorkOrderSummaryResponse: summary,
		Tasks:                    make([]TaskResponse, 0, order.TaskCount()),
		QuotaProgress:            make([]QuotaProgressResponse, 0),
		AllowedTaskTypes:         make([]kernel.TaskType, 0),
	}

	for _, t := range order.Tasks() {
		details.Tasks = append(details.Tasks, TaskResponse{
			ID:               t.ID(),
			Type:             t.Type(),
			Status:           t.Status(),
			Address:          t.Address(),
			ClientName:       t.ClientName(),
			Description:      t.Description(),
			ReplacementForID: t.ReplacementForID(),
		})
	}

	if wt, ok := types[order.TypeID()]; ok {
		progress, progressErr := h.calculator.QuotaProgress(order, wt)
		if progressErr != nil {
			return WorkOrderDetailsResponse{}, progressErr
		}
		for _, p := range progress {
			details.QuotaProgress = append(details.QuotaProgress, QuotaProgressResponse(p))
		}
		details.AllowedTaskTypes = wt.AllowedTaskTypes()
	}

	return details, nil
}
