package workorder

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task is one field visit. It belongs to exactly one WorkOrder and only its
// status changes after creation.
type Task struct {
	id          kernel.UUID
	taskType    kernel.TaskType
	status      TaskStatus
	address     string
	clientName  string
	description string

	// replacementForID is reserved: no operation sets it, it is only carried
	// through persistence.
	replacementForID *kernel.UUID

	guard guard.ConstructorGuard
}

// TaskData is the caller supplied part of a new task.
type TaskData struct {
	Type        kernel.TaskType
	Address     string
	ClientName  string
	Description string
}

// NewTask creates a task in status NEW.
func NewTask(id kernel.UUID, data TaskData) (*Task, error) {
	t := &Task{
		status: StatusNew,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setType(data.Type),
	); err != nil {
		return nil, err
	}

	t.address = strings.TrimSpace(data.Address)
	t.clientName = strings.TrimSpace(data.ClientName)
	t.description = strings.TrimSpace(data.Description)
	return t, nil
}

func RestoreTask(id kernel.UUID, data TaskData, status TaskStatus, replacementForID *kernel.UUID) (*Task, error) {
	t, err := NewTask(id, data)
	if err != nil {
		return nil, err
	}

	if err = t.setStatus(status); err != nil {
		return nil, err
	}

	if replacementForID != nil {
		if err = replacementForID.Validate(); err != nil {
			return nil, err
		}
		ref := *replacementForID
		t.replacementForID = &ref
	}

	return t, nil
}

func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

func (t *Task) ID() kernel.UUID {
	return t.id
}

func (t *Task) Type() kernel.TaskType {
	return t.taskType
}

func (t *Task) Status() TaskStatus {
	return t.status
}

func (t *Task) Address() string {
	return t.address
}

func (t *Task) ClientName() string {
	return t.clientName
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) ReplacementForID() *kernel.UUID {
	return t.replacementForID
}

func (t *Task) IsDone() bool {
	return t.status == StatusDone
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setType(tt kernel.TaskType) error {
	if err := tt.Validate(); err != nil {
		return err
	}
	t.taskType = tt
	return nil
}

func (t *Task) setStatus(status TaskStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
