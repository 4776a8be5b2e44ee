package ordertype

import (
	"maps"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// MaxQuota bounds a single per-type quota.
const MaxQuota = 1000

// Quotas is the target number of tasks per task type. Every task type has an
// entry; types not given explicitly count as zero.
type Quotas struct {
	values map[kernel.TaskType]int
}

// NewQuotas builds quotas from a partial mapping. Unknown task types and
// values outside [0, MaxQuota] are rejected.
func NewQuotas(values map[kernel.TaskType]int) (Quotas, error) {
	q := Quotas{values: make(map[kernel.TaskType]int, len(kernel.AllTaskTypes()))}
	for _, t := range kernel.AllTaskTypes() {
		q.values[t] = 0
	}

	for t, v := range values {
		if err := t.Validate(); err != nil {
			return Quotas{}, err
		}
		if v < 0 || v > MaxQuota {
			return Quotas{}, errs.NewValueIsOutOfRangeError("quota of "+t.String(), v, 0, MaxQuota)
		}
		q.values[t] = v
	}

	return q, nil
}

// Of returns the quota for t, zero when absent.
func (q Quotas) Of(t kernel.TaskType) int {
	return q.values[t]
}

// Total is the sum over all task types. It is the denominator of completion.
func (q Quotas) Total() int {
	total := 0
	for _, t := range kernel.AllTaskTypes() {
		total += q.values[t]
	}
	return total
}

// Map returns a copy with one entry per task type.
func (q Quotas) Map() map[kernel.TaskType]int {
	out := make(map[kernel.TaskType]int, len(kernel.AllTaskTypes()))
	for _, t := range kernel.AllTaskTypes() {
		out[t] = q.values[t]
	}
	return out
}

// Merge returns new quotas with the given entries replaced. Task types absent
// from values keep their current quota.
func (q Quotas) Merge(values map[kernel.TaskType]int) (Quotas, error) {
	merged := q.Map()
	maps.Copy(merged, values)
	return NewQuotas(merged)
}
