// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/abacus/abacus"
)

// Emulator state. Machine + Program + trace output.
type Emulator struct {
	Verbose         bool            // If set, enables verbose logging.
	*abacus.Machine                 // Reference to the machine state.
	Program         *abacus.Program // Reference to the currently running program.

	Output io.Writer // If set, receives a trace line per executed instruction.
	Limit  int       // If positive, the most ticks a Run may take.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: abacus.NewMachine(abacus.DefaultEntry),
		Program: &abacus.Program{},
	}

	return
}

// Load parses program text as the current program.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &abacus.Assembler{Verbose: emu.Verbose}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the machine to its entry label with empty registers.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Ticks
}

// LineNo returns the source line of the next instruction, or 0 if halted.
func (emu *Emulator) LineNo() int {
	ins, ok := emu.Program.Lookup(emu.Machine.Pc)
	if !ok {
		return 0
	}

	return ins.LineNo
}

// Tick performs a single step of the emulator.
// done is set once the machine halts.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	label := emu.Machine.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Label: label, Err: err}
		}
	}()

	trace, err := emu.Machine.Step(emu.Program)
	if errors.Is(err, abacus.ErrHalted) {
		if emu.Verbose {
			log.Debugf("emulator: halted at %v after %v ticks", label, emu.Ticks())
		}
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Output != nil {
		_, err = fmt.Fprintln(emu.Output, trace)
	}

	return
}

// Run ticks the emulator until the machine halts, returning the ticks taken.
// If Limit is reached first, the error wraps abacus.ErrStepLimit.
func (emu *Emulator) Run() (ticks int, err error) {
	for emu.Limit <= 0 || ticks < emu.Limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
		ticks++
	}

	if !emu.Machine.Halted(emu.Program) {
		err = &ErrRuntime{LineNo: emu.LineNo(), Label: emu.Machine.Pc, Err: abacus.ErrStepLimit}
	}

	return
}
