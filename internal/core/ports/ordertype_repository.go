package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
)

// WorkOrderTypeRepository defines the persistence contract for templates.
type WorkOrderTypeRepository interface {
	Add(ctx context.Context, aggregate *ordertype.WorkOrderType) error

	Update(ctx context.Context, aggregate *ordertype.WorkOrderType) error

	// Get returns the template or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error)

	// GetAll returns every template ordered by name.
	GetAll(ctx context.Context) ([]*ordertype.WorkOrderType, error)

	// Delete removes the template only. Work orders referencing it are kept.
	Delete(ctx context.Context, id kernel.UUID) error
}
