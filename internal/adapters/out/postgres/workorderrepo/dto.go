// Package workorderrepo persists work order aggregates with their tasks.
// Tasks live in their own table and keep insertion order through a position
// column.
package workorderrepo

import (
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO is the row of a work order. The number is stored as the bare
// sequence value and formatted on the way out.
type WorkOrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number      int64      `gorm:"not null;uniqueIndex"`
	Date        string     `gorm:"type:varchar(10);not null;index"`
	TypeID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PerformerID *uuid.UUID `gorm:"type:uuid;index"`
	Tasks       []TaskDTO  `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// TaskDTO is the row of a task.
type TaskDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkOrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position         int        `gorm:"not null"`
	Type             string     `gorm:"type:varchar(32);not null"`
	Status           string     `gorm:"type:varchar(16);not null"`
	Address          string     `gorm:"type:varchar(512);not null"`
	ClientName       string     `gorm:"type:varchar(255);not null"`
	Description      string     `gorm:"type:text;not null;default:''"`
	ReplacementForID *uuid.UUID `gorm:"type:uuid"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(order *workorder.WorkOrder) WorkOrderDTO {
	orderID := order.ID().Bytes()

	tasks := make([]TaskDTO, 0, order.TaskCount())
	for i, t := range order.Tasks() {
		tasks = append(tasks, TaskDTO{
			ID:               t.ID().Bytes(),
			WorkOrderID:      orderID,
			Position:         i,
			Type:             t.Type().String(),
			Status:           t.Status().String(),
			Address:          t.Address(),
			ClientName:       t.ClientName(),
			Description:      t.Description(),
			ReplacementForID: optionalToRow(t.ReplacementForID()),
		})
	}

	return WorkOrderDTO{
		ID:          orderID,
		Number:      order.Number().Seq(),
		Date:        order.Date().String(),
		TypeID:      order.TypeID().Bytes(),
		PerformerID: optionalToRow(order.PerformerID()),
		Tasks:       tasks,
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := workorder.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	date, err := kernel.NewDate(dto.Date)
	if err != nil {
		return nil, err
	}

	typeID, err := kernel.UUIDFromBytes(dto.TypeID[:])
	if err != nil {
		return nil, err
	}

	performerID, err := optionalFromRow(dto.PerformerID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*workorder.Task, 0, len(dto.Tasks))
	for _, taskDTO := range dto.Tasks {
		t, taskErr := taskToDomain(taskDTO)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, t)
	}

	return workorder.RestoreWorkOrder(id, number, date, typeID, performerID, tasks)
}

func taskToDomain(dto TaskDTO) (*workorder.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	taskType, err := kernel.ParseTaskType(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := workorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	replacementForID, err := optionalFromRow(dto.ReplacementForID)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreTask(id, workorder.TaskData{
		Type:        taskType,
		Address:     dto.Address,
		ClientName:  dto.ClientName,
		Description: dto.Description,
	}, status, replacementForID)
}

func optionalToRow(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalFromRow(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
