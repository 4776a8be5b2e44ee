package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves one work order with its tasks and quota progress.
type GetWorkOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkOrderQuery(orderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

func (q GetWorkOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TaskResponse is the read model of a task.
type TaskResponse struct {
	ID               kernel.UUID
	Type             kernel.TaskType
	Status           workorder.TaskStatus
	Address          string
	ClientName       string
	Description      string
	ReplacementForID *kernel.UUID
}

// QuotaProgressResponse is the fill level of one task type.
type QuotaProgressResponse struct {
	Type      kernel.TaskType
	Placed    int
	Quota     int
	OpenSlots int
	OverQuota int
}

// WorkOrderDetailsResponse extends the schedule row with the task list and,
// when the template still exists, per-type quota progress and allowed types.
type WorkOrderDetailsResponse struct {
	WorkOrderSummaryResponse

	Tasks            []TaskResponse
	QuotaProgress    []QuotaProgressResponse
	AllowedTaskTypes []kernel.TaskType
}
