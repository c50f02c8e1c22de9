// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package abacus

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// DefaultEntry is the label a machine starts at, unless told otherwise.
const DefaultEntry = "start"

// Machine is the execution state of an abacus machine: a program counter
// and a register bank. A Machine must not be shared between goroutines,
// but any number of machines may run the same Program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Entry     string    // Label the machine starts at after a reset.
	Pc        string    // Label of the next instruction.
	Register  Registers // Register bank.
	Underflow Underflow // Policy for decrementing a zero register.

	Ticks int // Instructions executed since reset.
}

// NewMachine creates a machine that starts at the entry label.
// An empty entry selects DefaultEntry.
func NewMachine(entry string) (mach *Machine) {
	if len(entry) == 0 {
		entry = DefaultEntry
	}

	mach = &Machine{
		Entry: entry,
		Pc:    entry,
	}

	return
}

// Reset the machine to the entry label, with all registers zero.
func (mach *Machine) Reset() {
	if mach.Verbose {
		log.Debugf("abacus: reset to %v", mach.Entry)
	}

	mach.Pc = mach.Entry
	mach.Register.Reset()
	mach.Ticks = 0
}

// String returns the machine state.
func (mach *Machine) String() string {
	return formatState(mach.Pc, mach.Register.String())
}

// Halted returns true if the program counter names no instruction.
func (mach *Machine) Halted(prog *Program) bool {
	_, ok := prog.Lookup(mach.Pc)
	return !ok
}

// Execute executes a single instruction, updating the program counter
// and at most one register. On error the state is unchanged, except for
// whatever an extension opcode did before failing.
func (mach *Machine) Execute(ins Instruction) (err error) {
	if ins.Err != nil {
		err = ins.Err
		return
	}

	switch op := ins.Op.(type) {
	case OpInc:
		mach.Register.Inc(op.Reg)
		mach.Pc = op.Next
	case OpIfZDec:
		if mach.Register.IsZero(op.Test) {
			mach.Pc = op.IfZero
			return
		}
		err = mach.Register.Dec(op.Dec, mach.Underflow)
		if err != nil {
			return
		}
		mach.Pc = op.IfNonZero
	case OpExt:
		var next string
		next, err = op.Impl.Execute(&mach.Register, op.Params)
		if err != nil {
			return
		}
		mach.Pc = next
	default:
		err = ErrUnknownOpcode(ins.Opcode())
	}

	return
}

// step executes the instruction at the program counter.
func (mach *Machine) step(prog *Program) (ins Instruction, err error) {
	label := mach.Pc

	ins, ok := prog.Lookup(label)
	if !ok {
		err = ErrHalted
		return
	}

	err = mach.Execute(ins)
	if err != nil {
		return
	}

	mach.Ticks++

	if mach.Verbose {
		log.Debugf("%v: %-30v => %v", label, ins, mach)
	}

	return
}

// Step executes a single instruction of the program.
// Returns ErrHalted if the program counter names no instruction.
func (mach *Machine) Step(prog *Program) (trace Trace, err error) {
	label := mach.Pc

	ins, err := mach.step(prog)
	if err != nil {
		return
	}

	trace = Trace{
		Label:       label,
		Instruction: ins,
		Pc:          mach.Pc,
		Registers:   mach.Register.Snapshot(),
	}

	return
}

// Run steps the program until it halts, returning the number of steps
// taken. A positive limit bounds the number of steps; if the machine is
// still running when it is reached, ErrStepLimit is returned.
func (mach *Machine) Run(prog *Program, limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		_, err = mach.step(prog)
		if errors.Is(err, ErrHalted) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		steps++
	}

	if !mach.Halted(prog) {
		err = ErrStepLimit
	}

	return
}
