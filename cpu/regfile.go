// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Store is the register state interface used by an execution engine.
//
// Set and Get address the 16-bit bank only, Set8 and Get8 the byte
// aliases only. Any other identifier fails with ErrRegisterInvalid and
// leaves the store unmodified.
type Store interface {
	Reset()
	Set(reg Reg, value uint16) error
	Get(reg Reg) (uint16, error)
	GetFlags() uint16
	SetFlags(value uint16)
	Set8(reg Reg, value uint8) error
	Get8(reg Reg) (uint8, error)
}

var _cpu_defines = map[string]string{
	"CF_OFFS":          fmt.Sprintf("%d", CF_OFFS),
	"PF_OFFS":          fmt.Sprintf("%d", PF_OFFS),
	"AF_OFFS":          fmt.Sprintf("%d", AF_OFFS),
	"ZF_OFFS":          fmt.Sprintf("%d", ZF_OFFS),
	"SF_OFFS":          fmt.Sprintf("%d", SF_OFFS),
	"TF_OFFS":          fmt.Sprintf("%d", TF_OFFS),
	"IF_OFFS":          fmt.Sprintf("%d", IF_OFFS),
	"DF_OFFS":          fmt.Sprintf("%d", DF_OFFS),
	"OF_OFFS":          fmt.Sprintf("%d", OF_OFFS),
	"CF":               fmt.Sprintf("0x%x", uint16(FLAG_CF)),
	"PF":               fmt.Sprintf("0x%x", uint16(FLAG_PF)),
	"AF":               fmt.Sprintf("0x%x", uint16(FLAG_AF)),
	"ZF":               fmt.Sprintf("0x%x", uint16(FLAG_ZF)),
	"SF":               fmt.Sprintf("0x%x", uint16(FLAG_SF)),
	"TF":               fmt.Sprintf("0x%x", uint16(FLAG_TF)),
	"IF":               fmt.Sprintf("0x%x", uint16(FLAG_IF)),
	"DF":               fmt.Sprintf("0x%x", uint16(FLAG_DF)),
	"OF":               fmt.Sprintf("0x%x", uint16(FLAG_OF)),
	"FLAGS_STATUS":     fmt.Sprintf("0x%x", uint16(FLAGS_STATUS)),
	"FLAGS_CONTROL":    fmt.Sprintf("0x%x", uint16(FLAGS_CONTROL)),
	"FLAGS_DEFINED":    fmt.Sprintf("0x%x", uint16(FLAGS_DEFINED)),
	"FLAGS_STUCK_BITS": fmt.Sprintf("0x%x", FLAGS_STUCK_BITS),
}

// State is a complete copy of the register file.
type State struct {
	Register [NUM_16BIT_REGS]uint16 // 16-bit bank, indexed by Reg.
	Flags    uint16                 // Flags register.
}

// HardwareReset returns the 8086 power-on register state, with execution
// starting at CS:IP = FFFF:0000.
func HardwareReset() [NUM_16BIT_REGS]uint16 {
	return [NUM_16BIT_REGS]uint16{
		REG_CS: 0xffff,
	}
}

// RegisterFile is the plain storage implementation of Store.
type RegisterFile struct {
	ResetState [NUM_16BIT_REGS]uint16 // Values loaded into the bank by Reset.

	register [NUM_16BIT_REGS]uint16
	flags    uint16
}

var _ Store = (*RegisterFile)(nil)

// NewRegisterFile creates a register file in its reset state.
func NewRegisterFile() (rf *RegisterFile) {
	rf = &RegisterFile{}
	rf.Reset()

	return
}

// Defines returns the flag offset and mask constants, by name.
func (rf *RegisterFile) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset loads ResetState into the bank and clears all flags.
func (rf *RegisterFile) Reset() {
	rf.register = rf.ResetState
	rf.flags = StuckFlags(FLAGS_RESET)
}

// Set writes a 16-bit register.
func (rf *RegisterFile) Set(reg Reg, value uint16) (err error) {
	if !reg.Is16Bit() {
		err = &ErrRegister{Op: "set", Reg: reg}
		return
	}

	rf.register[reg] = value
	return
}

// Get reads a 16-bit register.
func (rf *RegisterFile) Get(reg Reg) (value uint16, err error) {
	if !reg.Is16Bit() {
		err = &ErrRegister{Op: "get", Reg: reg}
		return
	}

	value = rf.register[reg]
	return
}

// Set8 writes one byte alias, preserving the other byte of its parent.
func (rf *RegisterFile) Set8(reg Reg, value uint8) (err error) {
	if !reg.Is8Bit() {
		err = &ErrRegister{Op: "set8", Reg: reg}
		return
	}

	parent := &rf.register[reg.Parent()]
	if reg.High() {
		*parent = (*parent & 0x00ff) | (uint16(value) << 8)
	} else {
		*parent = (*parent & 0xff00) | uint16(value)
	}
	return
}

// Get8 reads one byte alias.
func (rf *RegisterFile) Get8(reg Reg) (value uint8, err error) {
	if !reg.Is8Bit() {
		err = &ErrRegister{Op: "get8", Reg: reg}
		return
	}

	parent := rf.register[reg.Parent()]
	if reg.High() {
		value = uint8(parent >> 8)
	} else {
		value = uint8(parent)
	}
	return
}

// GetFlags reads the flags register.
func (rf *RegisterFile) GetFlags() uint16 {
	return StuckFlags(rf.flags)
}

// SetFlags writes the flags register. Bit 15 is forced to 1, all
// other bits are stored as given.
func (rf *RegisterFile) SetFlags(value uint16) {
	rf.flags = StuckFlags(value)
}

// State returns a copy of the register file contents.
func (rf *RegisterFile) State() State {
	return State{Register: rf.register, Flags: rf.GetFlags()}
}

// Restore replaces the register file contents.
func (rf *RegisterFile) Restore(st State) {
	rf.register = st.Register
	rf.SetFlags(st.Flags)
}

// String returns the register file as a dump.
func (rf *RegisterFile) String() string {
	return Dump(rf)
}

// Dump formats the contents of any store, one register per line.
func Dump(s Store) (text string) {
	for reg := range Registers16() {
		val, err := s.Get(reg)
		if err != nil {
			text += fmt.Sprintf("% 5s: ???? %v\n", reg, err)
			continue
		}
		text += fmt.Sprintf("% 5s: %04X\n", reg, val)
	}
	flags := s.GetFlags()
	text += fmt.Sprintf("% 5s: %04X %v\n", "flags", flags, Flags(flags))

	return
}
