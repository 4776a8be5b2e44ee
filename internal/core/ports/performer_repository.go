package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/performer"
)

// PerformerRepository gives read access to performers. Save exists for seeding only.
type PerformerRepository interface {
	// Get returns the performer or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*performer.Performer, error)

	// GetAll returns every performer ordered by name.
	GetAll(ctx context.Context) ([]*performer.Performer, error)

	// Save inserts or replaces a performer.
	Save(ctx context.Context, p *performer.Performer) error
}
