package abacus

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/abacus/internal"
)

// Program is a parsed abacus program, keyed by label.
// A Program is not modified after parsing, so may be shared by machines.
type Program struct {
	Instructions map[string]Instruction
}

// Lookup returns the instruction at a label.
func (prog *Program) Lookup(label string) (ins Instruction, ok bool) {
	if prog == nil {
		return
	}
	ins, ok = prog.Instructions[label]
	return
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// All iterates over the instructions in source line order.
func (prog *Program) All() iter.Seq2[string, Instruction] {
	if prog == nil {
		return func(func(string, Instruction) bool) {}
	}

	return internal.IterSorted(prog.Instructions, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(prog.Instructions[a].LineNo, prog.Instructions[b].LineNo),
			strings.Compare(a, b),
		)
	})
}

// Labels iterates over the labels in source line order.
func (prog *Program) Labels() iter.Seq[string] {
	return internal.IterKeys(prog.All())
}

// String returns a listing of the program.
func (prog *Program) String() string {
	var width int
	for label := range prog.Labels() {
		width = max(width, len(label)+1)
	}

	var text strings.Builder
	for label, ins := range prog.All() {
		fmt.Fprintf(&text, "%-*s %v\n", width, label+":", ins)
	}

	return text.String()
}
