// Package queries contains read operations for retrieving system state.
// Catalog queries (performers, templates) read rows directly with SQL.
// Work order queries load aggregates through readers and derive completion
// and statistics with the domain services, so the formulas live in one place.
package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
)

type (
	// WorkOrderReader is the read side of ports.WorkOrderRepository.
	WorkOrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
		GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)
		GetByDate(ctx context.Context, date kernel.Date) ([]*workorder.WorkOrder, error)
	}

	// WorkOrderTypeReader is the read side of ports.WorkOrderTypeRepository.
	WorkOrderTypeReader interface {
		Get(ctx context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error)
		GetAll(ctx context.Context) ([]*ordertype.WorkOrderType, error)
	}

	// PerformerReader is the read side of ports.PerformerRepository.
	PerformerReader interface {
		Get(ctx context.Context, id kernel.UUID) (*performer.Performer, error)
		GetAll(ctx context.Context) ([]*performer.Performer, error)
	}
)

func indexTypes(types []*ordertype.WorkOrderType) map[kernel.UUID]*ordertype.WorkOrderType {
	out := make(map[kernel.UUID]*ordertype.WorkOrderType, len(types))
	for _, wt := range types {
		out[wt.ID()] = wt
	}
	return out
}

func indexPerformers(performers []*performer.Performer) map[kernel.UUID]*performer.Performer {
	out := make(map[kernel.UUID]*performer.Performer, len(performers))
	for _, p := range performers {
		out[p.ID()] = p
	}
	return out
}
