package emulator

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abacus/abacus"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(0, emu.Program.Len())
	assert.Equal(abacus.DefaultEntry, emu.Pc)
}

func doLoad(emu *Emulator, program []string, t *testing.T) {
	err := emu.Load(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Reset()
	assert.NoError(t, err)
}

func TestEmulatorCycle(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"# Testing",
		"start: inc 1 3",
		"3:     inc 1 zz",
		"zz:    inc 1 start",
	}
	doLoad(emu, program, t)

	output := &bytes.Buffer{}
	emu.Output = output

	lines := []int{2, 3, 4}
	for n := range 10 {
		assert.Equal(lines[n%3], emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	assert.Equal(10, emu.Ticks())
	assert.Equal("3", emu.Pc)
	assert.Equal(big.NewInt(10), emu.Register.Get("1"))

	trace := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
	assert.Equal(10, len(trace))
	assert.Equal("inc 1 3                        => pc=3          regs={1: 1}", trace[0])
	assert.Equal("inc 1 start                    => pc=start      regs={1: 9}", trace[8])
	assert.Equal("inc 1 3                        => pc=3          regs={1: 10}", trace[9])
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"start: inc 1 done"}, t)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal("done", emu.Pc)
	assert.Equal(0, emu.LineNo())

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, emu.Ticks())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{
		"start: inc 1 x",
		"",
		"x: frobnicate 1",
	}, t)

	_, err := emu.Run()
	assert.Error(err)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(3, rt.LineNo)
	assert.Equal("x", rt.Label)
	assert.Equal(abacus.ErrUnknownOpcode("frobnicate"), rt.Err)
	assert.False(errors.Is(err, abacus.ErrHalted))
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{
		"start: ifzdec a done a more",
		"more: inc b start",
	}, t)
	emu.Register.Set("a", big.NewInt(5))

	ticks, err := emu.Run()
	assert.NoError(err)
	assert.Equal(11, ticks)
	assert.Equal(big.NewInt(5), emu.Register.Get("b"))
	assert.Equal(big.NewInt(0), emu.Register.Get("a"))
}

func TestEmulatorLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"start: inc 1 start"}, t)
	emu.Limit = 25

	ticks, err := emu.Run()
	assert.ErrorIs(err, abacus.ErrStepLimit)
	assert.Equal(25, ticks)
	assert.Equal(big.NewInt(25), emu.Register.Get("1"))

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(1, rt.LineNo)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"start: inc 1 start"}, t)
	emu.Limit = 3
	_, _ = emu.Run()

	emu.Entry = "other"
	assert.NoError(emu.Reset())
	assert.Equal("other", emu.Pc)
	assert.Equal(0, emu.Ticks())
	assert.Equal(0, emu.Register.Len())
}

type failWriter struct{}

var errWrite = errors.New("write")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEmulatorOutputError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"start: inc 1 done"}, t)
	emu.Output = failWriter{}

	_, err := emu.Tick()
	assert.ErrorIs(err, errWrite)
}
