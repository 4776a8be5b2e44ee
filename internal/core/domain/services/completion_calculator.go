package services

import (
	"errors"
	"math"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/workorder"
)

var ErrTypeMismatch = errors.New("work order does not reference the given work order type")

// TypeProgress is how far one task type of an order is filled against its quota.
type TypeProgress struct {
	Type      kernel.TaskType
	Placed    int
	Quota     int
	OpenSlots int
	OverQuota int
}

// CompletionCalculator measures a work order against its template.
type CompletionCalculator struct{}

func NewCompletionCalculator() CompletionCalculator {
	return CompletionCalculator{}
}

// RawPercent is 100 * done / total quota without rounding or clamping.
// A template with total quota 0 yields 0.
func (c CompletionCalculator) RawPercent(order *workorder.WorkOrder, wt *ordertype.WorkOrderType) (float64, error) {
	if err := c.validate(order, wt); err != nil {
		return 0, err
	}
	return rawPercent(order, wt), nil
}

// Percent is RawPercent rounded to the nearest integer. It is not clamped:
// completed over-quota tasks push it past 100.
func (c CompletionCalculator) Percent(order *workorder.WorkOrder, wt *ordertype.WorkOrderType) (int, error) {
	raw, err := c.RawPercent(order, wt)
	if err != nil {
		return 0, err
	}
	return round(raw), nil
}

// QuotaProgress reports, per task type in display order, the tasks placed on
// the order (any status) against the template quota.
func (c CompletionCalculator) QuotaProgress(
	order *workorder.WorkOrder,
	wt *ordertype.WorkOrderType,
) ([]TypeProgress, error) {
	if err := c.validate(order, wt); err != nil {
		return nil, err
	}

	progress := make([]TypeProgress, 0, len(kernel.AllTaskTypes()))
	for _, tt := range kernel.AllTaskTypes() {
		placed := order.CountByType(tt)
		quota := wt.Quotas().Of(tt)
		progress = append(progress, TypeProgress{
			Type:      tt,
			Placed:    placed,
			Quota:     quota,
			OpenSlots: max(0, quota-placed),
			OverQuota: max(0, placed-quota),
		})
	}
	return progress, nil
}

func (c CompletionCalculator) validate(order *workorder.WorkOrder, wt *ordertype.WorkOrderType) error {
	if err := errors.Join(order.Validate(), wt.Validate()); err != nil {
		return err
	}
	if !order.TypeID().IsEqual(wt.ID()) {
		return ErrTypeMismatch
	}
	return nil
}

func rawPercent(order *workorder.WorkOrder, wt *ordertype.WorkOrderType) float64 {
	total := wt.TotalQuota()
	if total == 0 {
		return 0
	}
	done := order.CountByStatus(workorder.StatusDone)
	return float64(done) / float64(total) * 100
}

// round halves away from zero; inputs are never negative.
func round(v float64) int {
	return int(math.Round(v))
}
