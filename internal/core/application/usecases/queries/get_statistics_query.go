package queries

import (
	"errors"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery aggregates all work orders for the reporting view.
type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// DateAverageResponse is the mean completion of one day.
type DateAverageResponse struct {
	Date          string
	AvgCompletion int
}

// StatisticsResponse holds the task status distribution (every status
// present) and the per-day average completion sorted by date.
type StatisticsResponse struct {
	TotalOrders        int
	TotalTasks         int
	StatusDistribution map[workorder.TaskStatus]int
	DateAverages       []DateAverageResponse
}
