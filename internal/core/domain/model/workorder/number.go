package workorder

import (
	"fmt"
	"strconv"
	"strings"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

const numberPrefix = "N-"

var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError("number must be created via NewNumber or ParseNumber")

// Number is the human readable order number, "N-" followed by the sequence
// value zero padded to four digits. Values above 9999 simply grow wider.
type Number struct {
	seq   int64
	guard guard.ConstructorGuard
}

func NewNumber(seq int64) (Number, error) {
	if seq <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", seq))
	}
	return Number{seq: seq, guard: guard.NewConstructorGuard()}, nil
}

// ParseNumber reads back the String form.
func ParseNumber(s string) (Number, error) {
	raw, ok := strings.CutPrefix(s, numberPrefix)
	if !ok || len(raw) < 4 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q is not an N-0000 number", s))
	}
	seq, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number", err)
	}
	return NewNumber(seq)
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

func (n Number) Seq() int64 {
	return n.seq
}

func (n Number) String() string {
	return fmt.Sprintf("%s%04d", numberPrefix, n.seq)
}
