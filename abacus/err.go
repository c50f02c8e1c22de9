package abacus

import (
	"errors"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	// Machine conditions
	ErrHalted    = errors.New(f("halted"))
	ErrStepLimit = errors.New(f("step limit reached"))
	ErrUnderflow = errors.New(f("underflow"))

	// Instruction decode errors
	ErrArityMismatch  = errors.New(f("arity"))
	ErrOpcodeReserved = errors.New(f("opcode reserved"))
	ErrOpcodeDefined  = errors.New(f("opcode already defined"))
	ErrUnderflowName  = errors.New(f("underflow policy unknown"))
)

// ErrUnknownOpcode is raised when dispatching an opcode with no implementation.
type ErrUnknownOpcode string

func (eo ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(eo))
}

// ErrArity is raised when dispatching an opcode with the wrong number of arguments.
type ErrArity struct {
	Opcode string
	Want   int
	Got    int
}

func (err ErrArity) Error() string {
	return f("%v expects %v arguments, got %v", err.Opcode, err.Want, err.Got)
}

func (err ErrArity) Is(target error) bool {
	return target == ErrArityMismatch
}

// ErrRegisterUnderflow names a register that would have gone below zero.
type ErrRegisterUnderflow string

func (er ErrRegisterUnderflow) Error() string {
	return f("register %v underflow", string(er))
}

func (er ErrRegisterUnderflow) Is(target error) bool {
	return target == ErrUnderflow
}
