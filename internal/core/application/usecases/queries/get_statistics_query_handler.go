package queries

import (
	"context"

	"workorders/internal/core/domain/services"
)

// GetStatisticsQueryHandler computes the reporting aggregates.
type GetStatisticsQueryHandler struct {
	orders     WorkOrderReader
	types      WorkOrderTypeReader
	statistics services.StatisticsCalculator
}

func NewGetStatisticsQueryHandler(orders WorkOrderReader, types WorkOrderTypeReader) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{
		orders:     orders,
		types:      types,
		statistics: services.NewStatisticsCalculator(),
	}
}

func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (StatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatisticsResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}

	types, err := h.types.GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}

	response := StatisticsResponse{
		TotalOrders:        len(orders),
		StatusDistribution: h.statistics.StatusDistribution(orders),
		DateAverages:       make([]DateAverageResponse, 0),
	}
	for _, o := range orders {
		response.TotalTasks += o.TaskCount()
	}
	for _, avg := range h.statistics.DateAverages(orders, types) {
		response.DateAverages = append(response.DateAverages, DateAverageResponse(avg))
	}

	return response, nil
}
