package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one mutation. Repositories
// obtained after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	WorkOrderRepository() WorkOrderRepository

	WorkOrderTypeRepository() WorkOrderTypeRepository

	PerformerRepository() PerformerRepository

	NumberSequence() NumberSequence
}
