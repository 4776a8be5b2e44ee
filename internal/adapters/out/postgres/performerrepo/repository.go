package performerrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPerformerRepository implements ports.PerformerRepository using GORM.
type GormPerformerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPerformerRepository(db *gorm.DB, tracker aggregateTracker) *GormPerformerRepository {
	return &GormPerformerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPerformerRepository) Get(ctx context.Context, id kernel.UUID) (*performer.Performer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PerformerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("performer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every performer ordered by name.
func (r *GormPerformerRepository) GetAll(ctx context.Context) ([]*performer.Performer, error) {
	var dtos []PerformerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	performers := make([]*performer.Performer, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		performers = append(performers, p)
	}

	return performers, nil
}

// Save inserts the performer or overwrites the existing row with the same id.
func (r *GormPerformerRepository) Save(ctx context.Context, p *performer.Performer) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}
