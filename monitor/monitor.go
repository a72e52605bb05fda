// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/sim8086/cpu"
	"github.com/ezrec/sim8086/internal"
)

var _monitor_defines = map[string]string{
	"NUM_16BIT_REGS": fmt.Sprintf("%d", cpu.NUM_16BIT_REGS),
	"NUM_REGS":       fmt.Sprintf("%d", cpu.NUM_REGS),
	"STACK_LIMIT":    fmt.Sprintf("%d", cpu.STACK_LIMIT),
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// Monitor drives a register file from line oriented commands.
//
//	reset                 reset the register file
//	set REG|flags VALUE   write a register or the flags
//	get REG|flags         print a register or the flags
//	flags [VALUE]         print or write the flags
//	setf FLAG, clrf FLAG  set or clear a named flag (cf, pf, ... of)
//	dump                  print all registers
//	push, pop             save or restore a checkpoint
//	drop                  discard all checkpoints
//	hash                  print the state fingerprint
//	expect REG|flags VALUE
//
// VALUE is a number, a register, a flag name, or a $(...) expression.
type Monitor struct {
	Verbose bool      // If set, logs every command and register access.
	Output  io.Writer // Destination of printed values.

	Regs  *cpu.RegisterFile // Backing register file.
	Trace *cpu.Logged       // Access tracing, wraps Regs.
	Store *cpu.Checkpoint   // Store used by commands, wraps Trace.
}

// NewMonitor creates a monitor over a reset register file.
func NewMonitor() (mon *Monitor) {
	mon = &Monitor{
		Output: io.Discard,
		Regs:   cpu.NewRegisterFile(),
	}
	mon.Trace = &cpu.Logged{Store: mon.Regs, Prefix: "monitor"}
	mon.Store = &cpu.Checkpoint{Store: mon.Trace}

	return
}

// Defines returns an iterator over all of the defines usable in
// expressions, ordered by name.
func (mon *Monitor) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Sorted(
		internal.IterSeq2Concat(maps.All(_monitor_defines), mon.Regs.Defines()))
}

// Run executes a script, one command per line.
func (mon *Monitor) Run(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		err = mon.Exec(scanner.Text())
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
			return
		}
	}

	err = scanner.Err()
	return
}

// parseLine strips comments, expands $(...) expressions, and splits
// the line into words.
func (mon *Monitor) parseLine(line string) (words []string, err error) {
	if n := strings.IndexAny(line, ";#"); n >= 0 {
		line = line[:n]
	}

	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := mon.evalExpr(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	return
}

// Exec executes a single command.
func (mon *Monitor) Exec(line string) (err error) {
	mon.Trace.Verbose = mon.Verbose

	words, err := mon.parseLine(line)
	if err != nil || len(words) == 0 {
		return
	}

	if mon.Verbose {
		log.Printf("monitor: %v", strings.Join(words, " "))
	}

	cmd, args := strings.ToLower(words[0]), words[1:]
	nargs := func(n ...int) bool {
		for _, count := range n {
			if len(args) == count {
				return true
			}
		}
		err = ErrCommandArgs
		return false
	}

	switch cmd {
	case "reset":
		if nargs(0) {
			mon.Store.Reset()
		}
	case "set":
		if nargs(2) {
			err = mon.set(args[0], args[1])
		}
	case "get":
		if nargs(1) {
			err = mon.print(args[0])
		}
	case "flags":
		if !nargs(0, 1) {
			break
		}
		if len(args) == 1 {
			err = mon.set("flags", args[0])
		} else {
			err = mon.print("flags")
		}
	case "setf", "clrf":
		if !nargs(1) {
			break
		}
		var flag cpu.Flag
		flag, err = cpu.ParseFlag(args[0])
		if err != nil {
			break
		}
		cpu.SetFlag(mon.Store, flag, cmd == "setf")
	case "dump":
		if nargs(0) {
			_, err = fmt.Fprint(mon.Output, cpu.Dump(mon.Store))
		}
	case "push":
		if nargs(0) {
			err = mon.Store.Push()
		}
	case "pop":
		if nargs(0) {
			err = mon.Store.Pop()
		}
	case "drop":
		if nargs(0) {
			mon.Store.Drop()
		}
	case "hash":
		if nargs(0) {
			var st cpu.State
			st, err = cpu.Snapshot(mon.Store)
			if err != nil {
				break
			}
			_, err = fmt.Fprintf(mon.Output, "hash: 0x%016x\n", st.Fingerprint())
		}
	case "expect":
		if nargs(2) {
			err = mon.expect(args[0], args[1])
		}
	default:
		err = ErrCommandUnknown
	}

	return
}

// target resolves a register or 'flags' name and its width in bits.
func target(name string) (reg cpu.Reg, bits int, err error) {
	if strings.ToLower(name) == "flags" {
		reg = cpu.NUM_REGS
		bits = 16
		return
	}

	reg, err = cpu.ParseReg(name)
	if err != nil {
		return
	}

	bits = 16
	if reg.Is8Bit() {
		bits = 8
	}
	return
}

// read returns the value of a register, or the flags.
func (mon *Monitor) read(reg cpu.Reg) (value uint16, err error) {
	switch {
	case reg == cpu.NUM_REGS:
		value = mon.Store.GetFlags()
	case reg.Is8Bit():
		var val8 uint8
		val8, err = mon.Store.Get8(reg)
		value = uint16(val8)
	default:
		value, err = mon.Store.Get(reg)
	}
	return
}

// valueOf returns the value of a word: a number, register, or flag name.
func (mon *Monitor) valueOf(word string) (value int64, err error) {
	if reg, _, terr := target(word); terr == nil {
		var val uint16
		val, err = mon.read(reg)
		value = int64(val)
		return
	}

	if flag, ferr := cpu.ParseFlag(word); ferr == nil {
		value = int64(flag)
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseValue(word)
	}
	return
}

// fit converts a value to an unsigned quantity of the given width.
// Negative values down to -(1 << (bits-1)) are two's complement encoded.
func fit(value int64, bits int) (result uint16, err error) {
	limit := int64(1) << bits
	switch {
	case value >= 0 && value < limit:
		result = uint16(value)
	case value < 0 && value >= -(limit / 2):
		result = uint16(value + limit)
	default:
		err = ErrValueRange{Value: value, Bits: bits}
	}
	return
}

func (mon *Monitor) set(name string, word string) (err error) {
	reg, bits, err := target(name)
	if err != nil {
		return
	}

	raw, err := mon.valueOf(word)
	if err != nil {
		return
	}

	value, err := fit(raw, bits)
	if err != nil {
		return
	}

	switch {
	case reg == cpu.NUM_REGS:
		mon.Store.SetFlags(value)
	case reg.Is8Bit():
		err = mon.Store.Set8(reg, uint8(value))
	default:
		err = mon.Store.Set(reg, value)
	}
	return
}

func (mon *Monitor) print(name string) (err error) {
	reg, bits, err := target(name)
	if err != nil {
		return
	}

	value, err := mon.read(reg)
	if err != nil {
		return
	}

	switch {
	case reg == cpu.NUM_REGS:
		_, err = fmt.Fprintf(mon.Output, "flags: 0x%04x %v\n", value, cpu.Flags(value))
	case bits == 8:
		_, err = fmt.Fprintf(mon.Output, "%v: 0x%02x\n", reg, value)
	default:
		_, err = fmt.Fprintf(mon.Output, "%v: 0x%04x\n", reg, value)
	}
	return
}

func (mon *Monitor) expect(name string, word string) (err error) {
	reg, bits, err := target(name)
	if err != nil {
		return
	}

	raw, err := mon.valueOf(word)
	if err != nil {
		return
	}

	want, err := fit(raw, bits)
	if err != nil {
		return
	}

	got, err := mon.read(reg)
	if err != nil {
		return
	}

	if got != want {
		err = ErrExpect{Name: strings.ToLower(name), Want: want, Got: got}
	}
	return
}
