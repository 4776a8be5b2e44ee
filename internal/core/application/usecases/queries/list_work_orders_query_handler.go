package queries

import (
	"cmp"
	"context"
	"slices"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
)

// ListWorkOrdersQueryHandler builds the daily schedule.
type ListWorkOrdersQueryHandler struct {
	orders     WorkOrderReader
	types      WorkOrderTypeReader
	performers PerformerReader
	calculator services.CompletionCalculator
}

func NewListWorkOrdersQueryHandler(
	orders WorkOrderReader,
	types WorkOrderTypeReader,
	performers PerformerReader,
) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{
		orders:     orders,
		types:      types,
		performers: performers,
		calculator: services.NewCompletionCalculator(),
	}
}

func (h ListWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkOrdersQuery,
) ([]WorkOrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetByDate(ctx, query.Date())
	if err != nil {
		return nil, err
	}

	allTypes, err := h.types.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	types := indexTypes(allTypes)

	allPerformers, err := h.performers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	performers := indexPerformers(allPerformers)

	result := make([]WorkOrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		if filter := query.TypeID(); filter != nil && !order.TypeID().IsEqual(*filter) {
			continue
		}

		summary, summaryErr := summarize(h.calculator, order, types, performers)
		if summaryErr != nil {
			return nil, summaryErr
		}
		result = append(result, summary)
	}

	sortSummaries(result, query.SortBy())
	return result, nil
}

func summarize(
	calculator services.CompletionCalculator,
	order *workorder.WorkOrder,
	types map[kernel.UUID]*ordertype.WorkOrderType,
	performers map[kernel.UUID]*performer.Performer,
) (WorkOrderSummaryResponse, error) {
	tasks := order.Tasks()
	statuses := make([]workorder.TaskStatus, 0, len(tasks))
	for _, t := range tasks {
		statuses = append(statuses, t.Status())
	}

	summary := WorkOrderSummaryResponse{
		ID:           order.ID(),
		Number:       order.Number().String(),
		Date:         order.Date().String(),
		TypeID:       order.TypeID(),
		PerformerID:  order.PerformerID(),
		Performer:    performerResponse(order.PerformerID(), performers),
		TaskStatuses: statuses,
		TaskCount:    len(tasks),
	}

	if wt, ok := types[order.TypeID()]; ok {
		percent, err := calculator.Percent(order, wt)
		if err != nil {
			return WorkOrderSummaryResponse{}, err
		}
		summary.TypeName = wt.Name()
		summary.TotalQuota = wt.TotalQuota()
		summary.CompletionPercent = percent
	}

	return summary, nil
}

func performerResponse(id *kernel.UUID, performers map[kernel.UUID]*performer.Performer) *PerformerResponse {
	if id == nil {
		return nil
	}
	p, ok := performers[*id]
	if !ok {
		return nil
	}
	return &PerformerResponse{
		ID:     p.ID(),
		Name:   p.Name(),
		Role:   p.Role(),
		Avatar: p.Avatar(),
	}
}

func sortSummaries(summaries []WorkOrderSummaryResponse, sortBy SortOrder) {
	slices.SortStableFunc(summaries, func(a, b WorkOrderSummaryResponse) int {
		if sortBy == SortByCompletion {
			if c := cmp.Compare(b.CompletionPercent, a.CompletionPercent); c != 0 {
				return c
			}
		}
		return compareNumbers(a.Number, b.Number)
	})
}

// compareNumbers orders "N-0009" before "N-0010" and "N-9999" before "N-10000".
func compareNumbers(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
