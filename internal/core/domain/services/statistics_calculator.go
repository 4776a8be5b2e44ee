package services

import (
	"sort"

	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/workorder"
)

// DateAverage is the mean completion of the work orders of one day.
type DateAverage struct {
	Date          string
	AvgCompletion int
}

// StatisticsCalculator derives the reporting aggregates over a set of work orders.
type StatisticsCalculator struct{}

func NewStatisticsCalculator() StatisticsCalculator {
	return StatisticsCalculator{}
}

// StatusDistribution counts tasks of all given orders by status. Every
// status is present in the result, zero when unused.
func (s StatisticsCalculator) StatusDistribution(orders []*workorder.WorkOrder) map[workorder.TaskStatus]int {
	counts := make(map[workorder.TaskStatus]int, len(workorder.AllStatuses()))
	for _, st := range workorder.AllStatuses() {
		counts[st] = 0
	}

	for _, o := range orders {
		for _, st := range workorder.AllStatuses() {
			counts[st] += o.CountByStatus(st)
		}
	}
	return counts
}

// DateAverages groups orders by exact date string and averages their
// unclamped, unrounded completion; each group is rounded once. Orders whose
// template is not among types are skipped. The result is sorted by date.
func (s StatisticsCalculator) DateAverages(
	orders []*workorder.WorkOrder,
	types []*ordertype.WorkOrderType,
) []DateAverage {
	byID := make(map[string]*ordertype.WorkOrderType, len(types))
	for _, t := range types {
		byID[t.ID().String()] = t
	}

	type group struct {
		total float64
		count int
	}
	groups := make(map[string]*group)

	for _, o := range orders {
		wt, ok := byID[o.TypeID().String()]
		if !ok {
			continue
		}

		key := o.Date().String()
		g, exists := groups[key]
		if !exists {
			g = &group{}
			groups[key] = g
		}
		g.total += rawPercent(o, wt)
		g.count++
	}

	result := make([]DateAverage, 0, len(groups))
	for date, g := range groups {
		result = append(result, DateAverage{
			Date:          date,
			AvgCompletion: round(g.total / float64(g.count)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
