// Package performerrepo persists performers.
package performerrepo

import (
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/performer"

	"github.com/google/uuid"
)

type PerformerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Role   string    `gorm:"type:varchar(255);not null"`
	Avatar string    `gorm:"type:varchar(1024);not null;default:''"`
}

func (PerformerDTO) TableName() string {
	return "performers"
}

func fromDomain(p *performer.Performer) PerformerDTO {
	return PerformerDTO{
		ID:     p.ID().Bytes(),
		Name:   p.Name(),
		Role:   p.Role(),
		Avatar: p.Avatar(),
	}
}

func toDomain(dto PerformerDTO) (*performer.Performer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return performer.NewPerformer(id, dto.Name, dto.Role, dto.Avatar)
}
