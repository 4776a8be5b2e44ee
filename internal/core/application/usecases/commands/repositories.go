// Package commands contains business operations that modify system state.
// Every handler runs inside one unit of work: validate the command, begin,
// load aggregates, apply the domain operation, persist, commit. A failure at
// any step leaves the stored state untouched.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides the work order repository bound to the transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// WorkOrderTypeRepoFactory provides the template repository bound to the transaction.
	WorkOrderTypeRepoFactory interface {
		WorkOrderTypeRepository() ports.WorkOrderTypeRepository
	}

	// PerformerRepoFactory provides the performer repository bound to the transaction.
	PerformerRepoFactory interface {
		PerformerRepository() ports.PerformerRepository
	}

	// NumberSequenceFactory provides the number sequence bound to the transaction.
	NumberSequenceFactory interface {
		NumberSequence() ports.NumberSequence
	}

	// WorkOrderUoW manages transactions that touch a single work order.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// WorkOrderTypeUoW manages transactions of template administration.
	WorkOrderTypeUoW interface {
		TxManager
		WorkOrderTypeRepoFactory
	}

	// WorkOrderTypeUoWFactory creates new template unit of work instances.
	WorkOrderTypeUoWFactory interface {
		Create() WorkOrderTypeUoW
	}

	// UoW manages transactions that read templates or performers while
	// writing a work order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   wt, err := uow.WorkOrderTypeRepository().Get(ctx, typeID)
	//   seq, err := uow.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
	//   // ... build and add the work order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		WorkOrderRepoFactory
		WorkOrderTypeRepoFactory
		PerformerRepoFactory
		NumberSequenceFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
