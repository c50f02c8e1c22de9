// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package abacus

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// lineRegex matches '<label>: <opcode> <args...>', once comments are removed.
var lineRegex = regexp.MustCompile(`^\s*(\w+):\s*(\w+)(?:\s+(.*))?$`)

// Assembler is a permissive single pass parser for abacus programs.
//
// Lines that are not instructions are skipped. A later line with the same
// label replaces an earlier one. Opcodes are decoded while parsing, but
// decode errors are kept on the instruction and only raised when the
// machine dispatches it.
type Assembler struct {
	Verbose bool // If set, logs skipped lines and duplicated labels.

	Extension map[string]Extension // Opcodes beyond the built-in set.
}

// Define adds an opcode beyond the built-in set.
func (asm *Assembler) Define(opcode string, ext Extension) (err error) {
	if Builtin(opcode) {
		err = ErrOpcodeReserved
		return
	}

	if asm.Extension == nil {
		asm.Extension = make(map[string]Extension, 4)
	}

	_, ok := asm.Extension[opcode]
	if ok {
		err = ErrOpcodeDefined
		return
	}

	asm.Extension[opcode] = ext
	return
}

// parseLine parses a single line, returning ok if it holds an instruction.
func (asm *Assembler) parseLine(text string, lineno int) (ins Instruction, ok bool) {
	line, _, _ := strings.Cut(text, "#")

	match := lineRegex.FindStringSubmatch(line)
	if match == nil {
		if asm.Verbose && len(strings.TrimSpace(line)) != 0 {
			log.Debugf("%v: skipped '%v'", lineno, text)
		}
		return
	}

	label, opcode, args := match[1], match[2], strings.Fields(match[3])

	ins = Instruction{
		LineNo: lineno,
		Label:  label,
		Words:  append([]string{opcode}, args...),
	}
	ins.Op, ins.Err = Decode(opcode, args, asm.Extension)
	ok = true

	return
}

// parse builds a program from a sequence of lines.
func (asm *Assembler) parse(lines iter.Seq[string]) (prog *Program) {
	prog = &Program{
		Instructions: make(map[string]Instruction, 16),
	}

	var lineno int
	for text := range lines {
		lineno++

		ins, ok := asm.parseLine(text, lineno)
		if !ok {
			continue
		}

		prior, dup := prog.Instructions[ins.Label]
		if dup && asm.Verbose {
			log.Warnf("%v: label %v replaces line %v", lineno, ins.Label, prior.LineNo)
		}

		prog.Instructions[ins.Label] = ins
	}

	return
}

// Parse parses an input stream into a Program. The only errors are
// those of the input stream; lines may be of any length.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	prog = asm.parse(func(yield func(string) bool) {
		for err == nil {
			var line string
			line, err = reader.ReadString('\n')
			if len(line) == 0 {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	})

	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		prog = nil
	}

	return
}

// ParseString parses program text into a Program.
func (asm *Assembler) ParseString(text string) *Program {
	return asm.parse(func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			if !yield(line) {
				return
			}
		}
	})
}

// Parse parses program text into a Program, using the built-in opcodes.
func Parse(text string) *Program {
	asm := &Assembler{}
	return asm.ParseString(text)
}
