package abacus

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/ezrec/abacus/internal"
)

// Registers is the unbounded register bank of a machine. Registers are
// not declared; reading or writing an unseen register creates it at zero.
// The zero value is an empty bank ready to use.
type Registers struct {
	value map[string]*big.Int
}

// slot returns the storage for a register, inserting zero if unseen.
// All mutation goes through here.
func (regs *Registers) slot(name string) *big.Int {
	if regs.value == nil {
		regs.value = make(map[string]*big.Int, 8)
	}

	value, ok := regs.value[name]
	if !ok {
		value = new(big.Int)
		regs.value[name] = value
	}

	return value
}

// Get returns a copy of the register value, creating the register at zero
// if unseen.
func (regs *Registers) Get(name string) *big.Int {
	return new(big.Int).Set(regs.slot(name))
}

// Lookup returns a copy of the register value without creating it.
func (regs *Registers) Lookup(name string) (value *big.Int, ok bool) {
	current, ok := regs.value[name]
	if ok {
		value = new(big.Int).Set(current)
	}
	return
}

// IsZero returns true if the register is zero, creating it if unseen.
func (regs *Registers) IsZero(name string) bool {
	return regs.slot(name).Sign() == 0
}

// Set the register to a value.
func (regs *Registers) Set(name string, value *big.Int) {
	regs.slot(name).Set(value)
}

// Inc increments the register by one.
func (regs *Registers) Inc(name string) {
	value := regs.slot(name)
	value.Add(value, big.NewInt(1))
}

// Dec decrements the register by one. A register already at zero is
// handled according to the policy; a fault leaves the bank unchanged.
func (regs *Registers) Dec(name string, policy Underflow) (err error) {
	current, ok := regs.value[name]

	if !ok || current.Sign() <= 0 {
		switch policy {
		case UNDERFLOW_CLAMP:
			regs.slot(name).SetInt64(0)
			return
		case UNDERFLOW_SIGNED:
			// decrement below
		default:
			err = ErrRegisterUnderflow(name)
			return
		}
	}

	value := regs.slot(name)
	value.Sub(value, big.NewInt(1))
	return
}

// Len returns the number of registers referenced so far.
func (regs *Registers) Len() int {
	return len(regs.value)
}

// Reset removes all registers.
func (regs *Registers) Reset() {
	clear(regs.value)
}

// All iterates over copies of the registers in name order.
func (regs *Registers) All() iter.Seq2[string, *big.Int] {
	return func(yield func(string, *big.Int) bool) {
		for name, value := range internal.IterSorted(regs.value, compareName) {
			if !yield(name, new(big.Int).Set(value)) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the register bank.
func (regs *Registers) Snapshot() (snap map[string]*big.Int) {
	snap = make(map[string]*big.Int, len(regs.value))
	for name, value := range regs.value {
		snap[name] = new(big.Int).Set(value)
	}
	return
}

// String returns the registers as {name: value, ...} in name order.
func (regs *Registers) String() string {
	return formatRegisters(regs.All())
}

func formatRegisters(all iter.Seq2[string, *big.Int]) string {
	var parts []string
	for name, value := range all {
		parts = append(parts, fmt.Sprintf("%v: %v", name, value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// compareName orders numeric register names by value, ahead of
// all other names, which are ordered lexically.
func compareName(a, b string) int {
	an, aok := new(big.Int).SetString(a, 10)
	bn, bok := new(big.Int).SetString(b, 10)

	switch {
	case aok && bok:
		if c := an.Cmp(bn); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}

	return strings.Compare(a, b)
}
