package emulator

import (
	"errors"

	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

var (
	ErrInstructionBudgetExceeded = errors.New(f("instruction budget exceeded"))
	ErrBudget                    = errors.New(f("instruction budget must be positive"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip     int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d line %d %v", err.Ip, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
