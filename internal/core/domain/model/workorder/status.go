package workorder

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// TaskStatus is the state label of a task. There is no transition table:
// any status may replace any other, DONE back to NEW included.
type TaskStatus string

const (
	StatusNew       TaskStatus = "NEW"
	StatusDone      TaskStatus = "DONE"
	StatusReplaced  TaskStatus = "REPLACED"
	StatusCancelled TaskStatus = "CANCELLED"
)

// AllStatuses lists every status in the order reports present them.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusNew, StatusDone, StatusReplaced, StatusCancelled}
}

func ParseStatus(s string) (TaskStatus, error) {
	st := TaskStatus(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s TaskStatus) Validate() error {
	switch s {
	case StatusNew, StatusDone, StatusReplaced, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid task status", string(s)))
	}
}

func (s TaskStatus) String() string {
	return string(s)
}
