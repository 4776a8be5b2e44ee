// Package ordertyperepo persists work order templates. Allowed task types
// and creator roles are stored as postgres text arrays.
package ordertyperepo

import (
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WorkOrderTypeDTO is the row of a template with one quota column per task type.
type WorkOrderTypeDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"type:varchar(255);not null"`
	ConnectionQuota  int            `gorm:"not null;default:0"`
	TechSupportQuota int            `gorm:"not null;default:0"`
	AllowedTaskTypes pq.StringArray `gorm:"type:text[];not null"`
	CreatorRoles     pq.StringArray `gorm:"type:text[];not null"`
}

func (WorkOrderTypeDTO) TableName() string {
	return "work_order_types"
}

func fromDomain(wt *ordertype.WorkOrderType) WorkOrderTypeDTO {
	allowed := make(pq.StringArray, 0, len(wt.AllowedTaskTypes()))
	for _, tt := range wt.AllowedTaskTypes() {
		allowed = append(allowed, tt.String())
	}

	roles := pq.StringArray(wt.CreatorRoles())
	if roles == nil {
		roles = pq.StringArray{}
	}

	return WorkOrderTypeDTO{
		ID:               wt.ID().Bytes(),
		Name:             wt.Name(),
		ConnectionQuota:  wt.Quotas().Of(kernel.TaskTypeConnection),
		TechSupportQuota: wt.Quotas().Of(kernel.TaskTypeTechSupport),
		AllowedTaskTypes: allowed,
		CreatorRoles:     roles,
	}
}

func toDomain(dto WorkOrderTypeDTO) (*ordertype.WorkOrderType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quotas, err := ordertype.NewQuotas(map[kernel.TaskType]int{
		kernel.TaskTypeConnection:  dto.ConnectionQuota,
		kernel.TaskTypeTechSupport: dto.TechSupportQuota,
	})
	if err != nil {
		return nil, err
	}

	allowed := make([]kernel.TaskType, 0, len(dto.AllowedTaskTypes))
	for _, raw := range dto.AllowedTaskTypes {
		tt, parseErr := kernel.ParseTaskType(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		allowed = append(allowed, tt)
	}

	return ordertype.RestoreWorkOrderType(id, dto.Name, quotas, allowed, dto.CreatorRoles)
}
