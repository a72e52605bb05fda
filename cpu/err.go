package cpu

import (
	"errors"

	"github.com/ezrec/sim8086/translate"
)

var f = translate.From

var (
	// Register file errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrFlagInvalid     = errors.New(f("flag invalid"))

	// Checkpoint errors
	ErrStackEmpty = errors.New(f("checkpoint stack empty"))
	ErrStackFull  = errors.New(f("checkpoint stack full"))
)

// ErrRegister reports a register identifier used outside of the domain
// of an operation.
type ErrRegister struct {
	Op   string // Operation attempted.
	Reg  Reg    // Identifier passed to the operation.
	Name string // Name, if the identifier came from a parse.
}

func (err *ErrRegister) Error() string {
	if len(err.Name) != 0 {
		return f("%v '%v': register invalid", err.Op, err.Name)
	}
	return f("%v %v: register invalid", err.Op, err.Reg)
}

func (err *ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}
