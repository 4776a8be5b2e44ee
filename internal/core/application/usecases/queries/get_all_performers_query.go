package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetAllPerformersQueryIsNotConstructed = errors.New(
	"GetAllPerformersQuery must be created via NewGetAllPerformersQuery constructor",
)

// GetAllPerformersQuery retrieves every performer for assignment pickers.
type GetAllPerformersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllPerformersQuery() GetAllPerformersQuery {
	return GetAllPerformersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPerformersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPerformersQueryIsNotConstructed)
}

// PerformerResponse is the read model of a performer. Avatar is empty when
// the performer has none.
type PerformerResponse struct {
	ID     kernel.UUID
	Name   string
	Role   string
	Avatar string
}
