package monitor

import (
	"errors"

	"github.com/ezrec/sim8086/translate"
)

var f = translate.From

var (
	ErrCommandUnknown = errors.New(f("command unknown"))
	ErrCommandArgs    = errors.New(f("wrong number of arguments"))
)

// ErrRuntime indicates the script line of a monitor error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value, flag or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrValueRange reports a value that does not fit its destination.
type ErrValueRange struct {
	Value int64
	Bits  int
}

func (err ErrValueRange) Error() string {
	return f("value %v does not fit in %v bits", err.Value, err.Bits)
}

// ErrExpect reports a failed 'expect' command.
type ErrExpect struct {
	Name string
	Want uint16
	Got  uint16
}

func (err ErrExpect) Error() string {
	return f("expect %v: want 0x%04x, got 0x%04x", err.Name, err.Want, err.Got)
}
