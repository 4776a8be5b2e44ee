package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

const (
	// AdviceUnavailable is returned when the advisor answers with no text.
	AdviceUnavailable = "Не удалось проанализировать данные."
	// AdviceConnectionFailed is returned when the advisor cannot be reached or fails.
	AdviceConnectionFailed = "Ошибка подключения к ИИ-ассистенту."
)

var ErrGetLogisticsAdviceQueryIsNotConstructed = errors.New(
	"GetLogisticsAdviceQuery must be created via NewGetLogisticsAdviceQuery constructor",
)

// GetLogisticsAdviceQuery asks the external advisor about the routing of one
// day's work orders, optionally only those of one template.
type GetLogisticsAdviceQuery struct {
	date   kernel.Date
	typeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLogisticsAdviceQuery builds the query. A nil typeID selects all templates.
func NewGetLogisticsAdviceQuery(date kernel.Date, typeID *kernel.UUID) (GetLogisticsAdviceQuery, error) {
	if err := date.Validate(); err != nil {
		return GetLogisticsAdviceQuery{}, err
	}
	if typeID != nil {
		if err := typeID.Validate(); err != nil {
			return GetLogisticsAdviceQuery{}, err
		}
	}
	return GetLogisticsAdviceQuery{date: date, typeID: typeID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLogisticsAdviceQuery) Validate() error {
	return q.guard.Validate(ErrGetLogisticsAdviceQueryIsNotConstructed)
}

func (q GetLogisticsAdviceQuery) Date() kernel.Date {
	return q.date
}

func (q GetLogisticsAdviceQuery) TypeID() *kernel.UUID {
	return q.typeID
}

// LogisticsAdviceResponse carries the advisor text. Fallback is set when Text
// is one of the fixed fallback messages.
type LogisticsAdviceResponse struct {
	Text     string
	Fallback bool
}
