package workorder

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// WorkOrder is one day of dispatched work against a template. It is the
// aggregate root for its tasks.
//
// The template and the performer are weak references: only their ids are
// held and either may no longer exist. Tasks keep insertion order and are
// never removed; an order may hold more tasks than its template's quota.
type WorkOrder struct {
	id          kernel.UUID
	number      Number
	date        kernel.Date
	typeID      kernel.UUID
	performerID *kernel.UUID
	tasks       []*Task

	guard guard.ConstructorGuard
}

// NewWorkOrder creates an empty, unassigned work order.
func NewWorkOrder(id kernel.UUID, number Number, date kernel.Date, typeID kernel.UUID) (*WorkOrder, error) {
	wo := &WorkOrder{
		tasks: make([]*Task, 0),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setNumber(number),
		wo.setDate(date),
		wo.setTypeID(typeID),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

func RestoreWorkOrder(
	id kernel.UUID,
	number Number,
	date kernel.Date,
	typeID kernel.UUID,
	performerID *kernel.UUID,
	tasks []*Task,
) (*WorkOrder, error) {
	wo, err := NewWorkOrder(id, number, date, typeID)
	if err != nil {
		return nil, err
	}

	if performerID != nil {
		if err = wo.AssignPerformer(*performerID); err != nil {
			return nil, err
		}
	}

	for _, t := range tasks {
		if err = t.Validate(); err != nil {
			return nil, err
		}
		wo.tasks = append(wo.tasks, t)
	}

	return wo, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

func (w *WorkOrder) Number() Number {
	return w.number
}

func (w *WorkOrder) Date() kernel.Date {
	return w.date
}

func (w *WorkOrder) TypeID() kernel.UUID {
	return w.typeID
}

// PerformerID returns nil while nobody is assigned.
func (w *WorkOrder) PerformerID() *kernel.UUID {
	return w.performerID
}

// Tasks returns the tasks in insertion order. The slice is a copy.
func (w *WorkOrder) Tasks() []*Task {
	out := make([]*Task, len(w.tasks))
	copy(out, w.tasks)
	return out
}

func (w *WorkOrder) TaskCount() int {
	return len(w.tasks)
}

// CountByType returns how many tasks of type tt the order holds, any status.
func (w *WorkOrder) CountByType(tt kernel.TaskType) int {
	n := 0
	for _, t := range w.tasks {
		if t.taskType == tt {
			n++
		}
	}
	return n
}

// CountByStatus returns how many tasks currently carry status.
func (w *WorkOrder) CountByStatus(status TaskStatus) int {
	n := 0
	for _, t := range w.tasks {
		if t.status == status {
			n++
		}
	}
	return n
}

// Task looks up a task by id.
func (w *WorkOrder) Task(taskID kernel.UUID) (*Task, error) {
	for _, t := range w.tasks {
		if t.id.IsEqual(taskID) {
			return t, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("task", taskID.String())
}

// AddTask appends a NEW task after the existing ones. Neither the template's
// allowed task types nor its quota ceiling are checked here.
func (w *WorkOrder) AddTask(taskID kernel.UUID, data TaskData) (*Task, error) {
	task, err := NewTask(taskID, data)
	if err != nil {
		return nil, err
	}

	if _, lookupErr := w.Task(taskID); lookupErr == nil {
		return nil, errs.NewValueIsInvalidError("task id " + taskID.String() + " already exists")
	}

	w.tasks = append(w.tasks, task)
	return task, nil
}

// UpdateTaskStatus overwrites the status of one task. Every other field of
// the task, and every other task, stays as it was.
func (w *WorkOrder) UpdateTaskStatus(taskID kernel.UUID, status TaskStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	task, err := w.Task(taskID)
	if err != nil {
		return err
	}

	return task.setStatus(status)
}

// AssignPerformer sets or replaces the performer. Assigning the same
// performer again leaves the order unchanged.
func (w *WorkOrder) AssignPerformer(performerID kernel.UUID) error {
	if err := performerID.Validate(); err != nil {
		return err
	}
	id := performerID
	w.performerID = &id
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	w.number = number
	return nil
}

func (w *WorkOrder) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	w.date = date
	return nil
}

func (w *WorkOrder) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}
	w.typeID = typeID
	return nil
}
