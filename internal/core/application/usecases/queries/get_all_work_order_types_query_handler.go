package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllWorkOrderTypesQueryHandler reads templates straight from the database.
// Allowed types and roles are postgres text arrays.
type GetAllWorkOrderTypesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllWorkOrderTypesQueryHandler(db *gorm.DB) GetAllWorkOrderTypesQueryHandler {
	return GetAllWorkOrderTypesQueryHandler{db: db}
}

// Handle returns templates sorted by name.
func (h GetAllWorkOrderTypesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkOrderTypesQuery,
) ([]WorkOrderTypeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	types := make([]WorkOrderTypeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			connection_quota,
			tech_support_quota,
			allowed_task_types,
			creator_roles
		FROM work_order_types
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var wt WorkOrderTypeResponse
		var id uuid.UUID
		var connection, techSupport int
		var allowed, roles pq.StringArray

		if err = rows.Scan(&id, &wt.Name, &connection, &techSupport, &allowed, &roles); err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		wt.ID = typeID
		wt.Quotas = map[kernel.TaskType]int{
			kernel.TaskTypeConnection:  connection,
			kernel.TaskTypeTechSupport: techSupport,
		}
		wt.TotalQuota = connection + techSupport

		wt.AllowedTaskTypes = make([]kernel.TaskType, 0, len(allowed))
		for _, raw := range allowed {
			tt, parseErr := kernel.ParseTaskType(raw)
			if parseErr != nil {
				return nil, parseErr
			}
			wt.AllowedTaskTypes = append(wt.AllowedTaskTypes, tt)
		}
		wt.CreatorRoles = []string(roles)
		if wt.CreatorRoles == nil {
			wt.CreatorRoles = []string{}
		}

		types = append(types, wt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
