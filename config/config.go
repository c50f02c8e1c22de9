// Package config loads the run configuration of an abacus machine.
//
// A configuration is a YAML document:
//
//	entry: start
//	limit: 1000
//	underflow: fault
//	registers:
//	  a: "3"
//	  b: "1 << 70"
//
// Register values are Starlark integer expressions.
package config

import (
	"errors"
	"io"
	"math/big"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/internal"
)

// Config is the run configuration for a machine.
type Config struct {
	Entry     string            `yaml:"entry,omitempty"`     // Entry label.
	Limit     int               `yaml:"limit,omitempty"`     // Step limit, 0 for none.
	Underflow string            `yaml:"underflow,omitempty"` // Underflow policy name.
	Registers map[string]string `yaml:"registers,omitempty"` // Initial register expressions.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Entry:     abacus.DefaultEntry,
		Underflow: abacus.UNDERFLOW_FAULT.String(),
	}
}

// Load reads a configuration, starting from the defaults.
func Load(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// Empty document
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	_, err = abacus.ParseUnderflow(cfg.Underflow)
	if err != nil {
		cfg = nil
		err = ErrUnderflowPolicy
		return
	}

	return
}

// LoadFile reads a configuration file.
func LoadFile(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Load(inf)
}

// SetRegister records a NAME=EXPR register initializer.
func (cfg *Config) SetRegister(assign string) (err error) {
	name, expr, ok := strings.Cut(assign, "=")
	name = strings.TrimSpace(name)
	if !ok || len(name) == 0 || len(strings.TrimSpace(expr)) == 0 {
		err = ErrRegisterSyntax
		return
	}

	if cfg.Registers == nil {
		cfg.Registers = make(map[string]string, 4)
	}
	cfg.Registers[name] = expr

	return
}

// Eval evaluates a Starlark integer expression.
func Eval(expr string) (value *big.Int, err error) {
	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", "rc=("+expr+")\n", nil)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrRegisterValue
		return
	}

	value = st_int.BigInt()
	return
}

// Apply configures the machine and resets it, then sets the initial
// register values.
func (cfg *Config) Apply(mach *abacus.Machine) (err error) {
	policy, err := abacus.ParseUnderflow(cfg.Underflow)
	if err != nil {
		err = ErrUnderflowPolicy
		return
	}

	if len(cfg.Entry) != 0 {
		mach.Entry = cfg.Entry
	}
	mach.Underflow = policy
	mach.Reset()

	for name, expr := range internal.IterSorted(cfg.Registers, strings.Compare) {
		var value *big.Int
		value, err = Eval(expr)
		if err == nil && value.Sign() < 0 {
			err = ErrRegisterValue
		}
		if err != nil {
			err = &ErrRegister{Name: name, Expr: expr, Err: err}
			return
		}

		if mach.Verbose {
			log.Debugf("config: register %v = %v", name, value)
		}
		mach.Register.Set(name, value)
	}

	return
}
