package kernel

import (
	"fmt"
	"time"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

// DateLayout is the only accepted textual form of a Date.
const DateLayout = "2006-01-02"

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate or DateFromTime")

// Date is a calendar day. Its string form is fixed width, so lexicographic
// order of String() equals chronological order.
type Date struct {
	value string
	guard guard.ConstructorGuard
}

// NewDate parses s strictly as YYYY-MM-DD.
func NewDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	if t.Format(DateLayout) != s {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return Date{value: s, guard: guard.NewConstructorGuard()}, nil
}

// DateFromTime takes the calendar day of t in t's own location.
func DateFromTime(t time.Time) Date {
	return Date{value: t.Format(DateLayout), guard: guard.NewConstructorGuard()}
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

func (d Date) String() string {
	return d.value
}

func (d Date) IsEqual(other Date) bool {
	return d.value == other.value
}

func (d Date) Before(other Date) bool {
	return d.value < other.value
}
