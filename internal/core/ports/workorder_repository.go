// Package ports defines the contracts between the work-order core and its
// adapters: persistence, numbering and the external logistics advisor.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates together with their tasks.
type WorkOrderRepository interface {
	// Add persists a new work order with its tasks.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order: performer, task
	// statuses and appended tasks.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get returns the work order with its tasks in insertion order, or an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAll returns every work order, ordered by number.
	GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)

	// GetByDate returns the work orders of one day, ordered by number.
	GetByDate(ctx context.Context, date kernel.Date) ([]*workorder.WorkOrder, error)
}
