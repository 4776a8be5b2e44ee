package queries

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// SortOrder selects the ordering of ListWorkOrders.
type SortOrder string

const (
	// SortByNumber orders by work order number ascending.
	SortByNumber SortOrder = "number"
	// SortByCompletion orders by completion descending, ties by number.
	SortByCompletion SortOrder = "completion"
)

// ParseSortOrder accepts "number", "completion" and the empty string, which
// means SortByNumber.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortByNumber:
		return SortByNumber, nil
	case SortByCompletion:
		return SortByCompletion, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("unknown sort order %q", s))
	}
}

// ListWorkOrdersQuery lists the work orders of one day, optionally only those
// of one template.
type ListWorkOrdersQuery struct {
	date   kernel.Date
	typeID *kernel.UUID
	sortBy SortOrder

	guard guard.ConstructorGuard
}

// NewListWorkOrdersQuery builds the query. A nil typeID selects all templates.
func NewListWorkOrdersQuery(date kernel.Date, typeID *kernel.UUID, sortBy SortOrder) (ListWorkOrdersQuery, error) {
	if err := date.Validate(); err != nil {
		return ListWorkOrdersQuery{}, err
	}
	if typeID != nil {
		if err := typeID.Validate(); err != nil {
			return ListWorkOrdersQuery{}, err
		}
	}
	if sortBy == "" {
		sortBy = SortByNumber
	}
	if sortBy != SortByNumber && sortBy != SortByCompletion {
		return ListWorkOrdersQuery{}, errs.NewValueIsInvalidError("sort")
	}

	return ListWorkOrdersQuery{
		date:   date,
		typeID: typeID,
		sortBy: sortBy,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

func (q ListWorkOrdersQuery) Date() kernel.Date {
	return q.date
}

func (q ListWorkOrdersQuery) TypeID() *kernel.UUID {
	return q.typeID
}

func (q ListWorkOrdersQuery) SortBy() SortOrder {
	return q.sortBy
}

// WorkOrderSummaryResponse is one row of the daily schedule.
//
// TypeName is empty and CompletionPercent is 0 when the template no longer
// exists. Performer is nil when none is assigned or the assigned performer is
// unknown; PerformerID still carries the stored reference.
type WorkOrderSummaryResponse struct {
	ID                kernel.UUID
	Number            string
	Date              string
	TypeID            kernel.UUID
	TypeName          string
	PerformerID       *kernel.UUID
	Performer         *PerformerResponse
	TaskStatuses      []workorder.TaskStatus
	TaskCount         int
	TotalQuota        int
	CompletionPercent int
}
