package abacus

import (
	"math/big"
	"slices"
	"testing"

	"github.com/ezrec/abacus/internal"
	"github.com/stretchr/testify/assert"
)

func TestRegisters_Get(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	assert.Equal(0, regs.Len())

	_, ok := regs.Lookup("a")
	assert.False(ok)
	assert.Equal(0, regs.Len())

	assert.Equal(0, regs.Get("a").Sign())
	assert.Equal(1, regs.Len())

	value, ok := regs.Lookup("a")
	assert.True(ok)
	assert.Equal(0, value.Sign())
}

func TestRegisters_GetIsCopy(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Inc("a")

	value := regs.Get("a")
	value.SetInt64(100)
	assert.Equal(int64(1), regs.Get("a").Int64())

	snap := regs.Snapshot()
	snap["a"].SetInt64(100)
	assert.Equal(int64(1), regs.Get("a").Int64())
}

func TestRegisters_Inc(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	for range 5 {
		regs.Inc("x")
	}
	assert.Equal(int64(5), regs.Get("x").Int64())
	assert.Equal(1, regs.Len())
}

func TestRegisters_Unbounded(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	max64 := new(big.Int).SetUint64(^uint64(0))
	regs.Set("x", max64)
	regs.Inc("x")

	want := new(big.Int).Add(max64, big.NewInt(1))
	assert.Equal(0, want.Cmp(regs.Get("x")))
	assert.Equal("18446744073709551616", regs.Get("x").String())
}

func TestRegisters_Dec(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Set("x", big.NewInt(2))

	assert.NoError(regs.Dec("x", UNDERFLOW_FAULT))
	assert.NoError(regs.Dec("x", UNDERFLOW_FAULT))
	assert.True(regs.IsZero("x"))

	assert.Equal(ErrRegisterUnderflow("x"), regs.Dec("x", UNDERFLOW_FAULT))
	assert.True(regs.IsZero("x"))

	assert.NoError(regs.Dec("x", UNDERFLOW_CLAMP))
	assert.True(regs.IsZero("x"))

	assert.NoError(regs.Dec("x", UNDERFLOW_SIGNED))
	assert.Equal(int64(-1), regs.Get("x").Int64())

	// Negative registers are treated as underflowed.
	assert.ErrorIs(regs.Dec("x", UNDERFLOW_FAULT), ErrUnderflow)
	assert.NoError(regs.Dec("x", UNDERFLOW_CLAMP))
	assert.True(regs.IsZero("x"))
}

func TestRegisters_DecUnseen(t *testing.T) {
	assert := assert.New(t)

	var regs Registers

	assert.Equal(ErrRegisterUnderflow("y"), regs.Dec("y", UNDERFLOW_FAULT))
	assert.Equal(0, regs.Len())
	_, ok := regs.Lookup("y")
	assert.False(ok)

	assert.NoError(regs.Dec("y", UNDERFLOW_CLAMP))
	assert.Equal(1, regs.Len())
	assert.True(regs.IsZero("y"))

	assert.NoError(regs.Dec("z", UNDERFLOW_SIGNED))
	assert.Equal(int64(-1), regs.Get("z").Int64())
}

func TestRegisters_All(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	for _, name := range []string{"b", "10", "a", "2", "1"} {
		regs.Inc(name)
	}

	names := slices.Collect(internal.IterKeys(regs.All()))
	assert.Equal([]string{"1", "2", "10", "a", "b"}, names)
	assert.Equal("{1: 1, 2: 1, 10: 1, a: 1, b: 1}", regs.String())

	regs.Reset()
	assert.Equal(0, regs.Len())
	assert.Equal("{}", regs.String())
}

func TestCompareName(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b string
		cmp  int
	}){
		{"1", "2", -1},
		{"10", "9", 1},
		{"007", "7", -1}, // same value, lexical tie break
		{"9", "a", -1},
		{"a", "9", 1},
		{"a", "b", -1},
		{"x", "x", 0},
	}

	for _, entry := range table {
		assert.Equal(entry.cmp, compareName(entry.a, entry.b), entry.a+" vs "+entry.b)
	}
}

func TestParseUnderflow(t *testing.T) {
	assert := assert.New(t)

	for _, policy := range []Underflow{UNDERFLOW_FAULT, UNDERFLOW_CLAMP, UNDERFLOW_SIGNED} {
		parsed, err := ParseUnderflow(policy.String())
		assert.NoError(err)
		assert.Equal(policy, parsed)
	}

	_, err := ParseUnderflow("wrap")
	assert.ErrorIs(err, ErrUnderflowName)
}
