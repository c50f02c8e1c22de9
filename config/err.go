package config

import (
	"errors"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrRegisterSyntax  = errors.New(f("register assignment is not NAME=EXPR"))
	ErrRegisterValue   = errors.New(f("register value is not a natural number"))
	ErrUnderflowPolicy = errors.New(f("underflow policy unknown"))
)

// ErrRegister indicates which register initializer failed.
type ErrRegister struct {
	Name string
	Expr string
	Err  error
}

func (err *ErrRegister) Error() string {
	return f("register %v = '%v': %v", err.Name, err.Expr, err.Err)
}

func (err *ErrRegister) Unwrap() error {
	return err.Err
}
