package ordertyperepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderTypeRepository implements ports.WorkOrderTypeRepository using GORM.
type GormWorkOrderTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkOrderTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderTypeRepository {
	return &GormWorkOrderTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWorkOrderTypeRepository) Add(ctx context.Context, aggregate *ordertype.WorkOrderType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column, zero quotas included.
func (r *GormWorkOrderTypeRepository) Update(ctx context.Context, aggregate *ordertype.WorkOrderType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderTypeDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order type", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkOrderTypeRepository) Get(ctx context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order type", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every template ordered by name.
func (r *GormWorkOrderTypeRepository) GetAll(ctx context.Context) ([]*ordertype.WorkOrderType, error) {
	var dtos []WorkOrderTypeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*ordertype.WorkOrderType, 0, len(dtos))
	for _, dto := range dtos {
		wt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, wt)
	}

	return types, nil
}

// Delete removes only the template row. Work orders keep their type_id.
func (r *GormWorkOrderTypeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderTypeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order type", id.String())
	}

	return nil
}
