package abacus

import (
	"fmt"
	"math/big"

	"github.com/ezrec/abacus/internal"
)

// Trace records one executed instruction and the state it left behind.
type Trace struct {
	Label       string              // Label of the executed instruction.
	Instruction Instruction         // The executed instruction.
	Pc          string              // Program counter after execution.
	Registers   map[string]*big.Int // Registers after execution.
}

// String formats the trace as 'instruction => state'.
func (tr Trace) String() string {
	regs := formatRegisters(internal.IterSorted(tr.Registers, compareName))
	return fmt.Sprintf("%-30v => %v", tr.Instruction, formatState(tr.Pc, regs))
}

func formatState(pc string, regs string) string {
	return fmt.Sprintf("pc=%-10v regs=%v", pc, regs)
}
