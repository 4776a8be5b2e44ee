package kernel

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// TaskType is the kind of field job. The set is closed.
type TaskType string

const (
	TaskTypeConnection  TaskType = "CONNECTION"
	TaskTypeTechSupport TaskType = "TECH_SUPPORT"
)

// AllTaskTypes lists every task type in display order.
func AllTaskTypes() []TaskType {
	return []TaskType{TaskTypeConnection, TaskTypeTechSupport}
}

func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t TaskType) Validate() error {
	switch t {
	case TaskTypeConnection, TaskTypeTechSupport:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("task type", fmt.Errorf("%q is not a valid task type", string(t)))
	}
}

func (t TaskType) String() string {
	return string(t)
}
