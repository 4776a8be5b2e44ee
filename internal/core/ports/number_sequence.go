package ports

import "context"

// WorkOrderNumberSequence is the name of the sequence work order numbers are drawn from.
const WorkOrderNumberSequence = "work_order_number"

// NumberSequence issues strictly increasing values per name. A value taken
// inside a rolled back transaction is given out again, so successful callers
// see 1, 2, 3... without gaps. Values never depend on how many rows exist.
type NumberSequence interface {
	Next(ctx context.Context, name string) (int64, error)
}
