package monitor

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sim8086/cpu"
)

// predeclared returns the starlark globals for expressions: every
// register by upper case name, FLAGS, and every integer define.
func (mon *Monitor) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, str := range mon.Defines() {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	st := mon.Regs.State()
	for reg := range cpu.Registers16() {
		pred[strings.ToUpper(reg.String())] = starlark.MakeInt(int(st.Register[reg]))
	}
	for reg := range cpu.Registers8() {
		value, _ := mon.Regs.Get8(reg)
		pred[strings.ToUpper(reg.String())] = starlark.MakeInt(int(value))
	}
	pred["FLAGS"] = starlark.MakeInt(int(st.Flags))

	return
}

// evalExpr evaluates a $(...) expression body.
func (mon *Monitor) evalExpr(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, mon.predeclared())
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
