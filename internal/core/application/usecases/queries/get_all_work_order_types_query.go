package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetAllWorkOrderTypesQueryIsNotConstructed = errors.New(
	"GetAllWorkOrderTypesQuery must be created via NewGetAllWorkOrderTypesQuery constructor",
)

// GetAllWorkOrderTypesQuery retrieves every template with its quotas.
type GetAllWorkOrderTypesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllWorkOrderTypesQuery() GetAllWorkOrderTypesQuery {
	return GetAllWorkOrderTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkOrderTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkOrderTypesQueryIsNotConstructed)
}

// WorkOrderTypeResponse is the read model of a template. Quotas has one
// entry per task type.
type WorkOrderTypeResponse struct {
	ID               kernel.UUID
	Name             string
	Quotas           map[kernel.TaskType]int
	TotalQuota       int
	AllowedTaskTypes []kernel.TaskType
	CreatorRoles     []string
}
