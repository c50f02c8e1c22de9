package abacus

import (
	"slices"
	"strings"
)

// Kind is the instruction variant.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_INC    = Kind(0) // inc
	KIND_IFZDEC = Kind(1) // ifzdec
	KIND_EXT    = Kind(2) // ext
)

// Op is a decoded instruction. The implementations are OpInc, OpIfZDec
// and OpExt; no others exist.
type Op interface {
	Kind() Kind
	Args() []string
	isOp()
}

// OpInc increments Reg and jumps to Next.
type OpInc struct {
	Reg  string
	Next string
}

func (OpInc) Kind() Kind        { return KIND_INC }
func (op OpInc) Args() []string { return []string{op.Reg, op.Next} }
func (OpInc) isOp()             {}

// OpIfZDec jumps to IfZero when Test is zero, otherwise decrements Dec
// and jumps to IfNonZero.
type OpIfZDec struct {
	Test      string
	IfZero    string
	Dec       string
	IfNonZero string
}

func (OpIfZDec) Kind() Kind { return KIND_IFZDEC }
func (op OpIfZDec) Args() []string {
	return []string{op.Test, op.IfZero, op.Dec, op.IfNonZero}
}
func (OpIfZDec) isOp() {}

// Extension implements an opcode outside of the built-in set.
type Extension interface {
	// Arity is the number of arguments the opcode takes.
	Arity() int
	// Execute runs the opcode against the registers, and returns the
	// label of the next instruction.
	Execute(regs *Registers, args []string) (next string, err error)
}

// OpExt is an opcode implemented by an Extension.
type OpExt struct {
	Name   string
	Params []string
	Impl   Extension
}

func (OpExt) Kind() Kind        { return KIND_EXT }
func (op OpExt) Args() []string { return op.Params }
func (OpExt) isOp()             {}

// builtinArity maps the built-in opcode names to their argument counts.
var builtinArity = map[string]int{
	KIND_INC.String():    2,
	KIND_IFZDEC.String(): 4,
}

// Builtin returns true if the opcode name is part of the built-in set.
func Builtin(opcode string) (ok bool) {
	_, ok = builtinArity[opcode]
	return
}

// Decode converts an opcode and its arguments into an Op.
// Opcodes outside the built-in set are looked up in ext.
func Decode(opcode string, args []string, ext map[string]Extension) (op Op, err error) {
	want, ok := builtinArity[opcode]
	if !ok {
		impl, ok := ext[opcode]
		if !ok {
			err = ErrUnknownOpcode(opcode)
			return
		}
		want = impl.Arity()
		if len(args) != want {
			err = ErrArity{Opcode: opcode, Want: want, Got: len(args)}
			return
		}
		op = OpExt{Name: opcode, Params: slices.Clone(args), Impl: impl}
		return
	}

	if len(args) != want {
		err = ErrArity{Opcode: opcode, Want: want, Got: len(args)}
		return
	}

	switch opcode {
	case KIND_INC.String():
		op = OpInc{Reg: args[0], Next: args[1]}
	case KIND_IFZDEC.String():
		op = OpIfZDec{Test: args[0], IfZero: args[1], Dec: args[2], IfNonZero: args[3]}
	}

	return
}

// Instruction is a labeled line of program text.
type Instruction struct {
	LineNo int      // Source line number.
	Label  string   // Label of the instruction.
	Words  []string // Opcode and arguments, as written.
	Op     Op       // Decoded operation, nil if Err is set.
	Err    error    // Decode error, raised when the instruction is dispatched.
}

// Opcode returns the opcode name as written.
func (ins Instruction) Opcode() string {
	if len(ins.Words) == 0 {
		return ""
	}
	return ins.Words[0]
}

// String returns the instruction text, without the label.
func (ins Instruction) String() string {
	return strings.Join(ins.Words, " ")
}
