package emulator

import (
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int    // Source line of the failing instruction.
	Label  string // Label of the failing instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (%v) %v", err.LineNo, err.Label, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
