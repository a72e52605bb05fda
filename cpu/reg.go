package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Reg is a register identifier.
type Reg int

// 16-bit registers, in storage order.
const (
	REG_AX = Reg(0)  // ax
	REG_CX = Reg(1)  // cx
	REG_DX = Reg(2)  // dx
	REG_BX = Reg(3)  // bx
	REG_SP = Reg(4)  // sp
	REG_BP = Reg(5)  // bp
	REG_SI = Reg(6)  // si
	REG_DI = Reg(7)  // di
	REG_IP = Reg(8)  // ip
	REG_ES = Reg(9)  // es
	REG_CS = Reg(10) // cs
	REG_SS = Reg(11) // ss
	REG_DS = Reg(12) // ds

	NUM_16BIT_REGS = Reg(13) // Size of the 16-bit bank. Not a register.
)

// 8-bit aliases of the low and high bytes of ax, cx, dx and bx.
const (
	REG_AL = NUM_16BIT_REGS + iota // al
	REG_CL                         // cl
	REG_DL                         // dl
	REG_BL                         // bl
	REG_AH                         // ah
	REG_CH                         // ch
	REG_DH                         // dh
	REG_BH                         // bh

	NUM_REGS // Total register identifiers.
)

var _reg_names = [NUM_REGS]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"ip", "es", "cs", "ss", "ds",
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
}

func (reg Reg) String() string {
	if reg < 0 || reg >= NUM_REGS {
		return fmt.Sprintf("Reg(%d)", int(reg))
	}
	return _reg_names[reg]
}

// ParseReg returns the register for a case-insensitive name.
func ParseReg(name string) (reg Reg, err error) {
	name = strings.ToLower(name)
	for n, str := range _reg_names {
		if str == name {
			reg = Reg(n)
			return
		}
	}

	err = &ErrRegister{Op: "parse", Reg: -1, Name: name}
	return
}

// Is16Bit returns true for identifiers of the 16-bit bank.
func (reg Reg) Is16Bit() bool {
	return reg >= REG_AX && reg < NUM_16BIT_REGS
}

// Is8Bit returns true for byte aliases.
func (reg Reg) Is8Bit() bool {
	return reg >= REG_AL && reg < NUM_REGS
}

// Parent returns the 16-bit register an alias lives in.
// For a 16-bit register, Parent returns the register itself.
func (reg Reg) Parent() Reg {
	if !reg.Is8Bit() {
		return reg
	}
	return (reg - REG_AL) & 3
}

// High returns true if the alias names the upper byte of its parent.
func (reg Reg) High() bool {
	return reg.Is8Bit() && reg >= REG_AH
}

// Registers16 iterates the 16-bit bank in storage order.
func Registers16() iter.Seq[Reg] {
	return func(yield func(Reg) bool) {
		for reg := REG_AX; reg < NUM_16BIT_REGS; reg++ {
			if !yield(reg) {
				return
			}
		}
	}
}

// Registers8 iterates the byte aliases.
func Registers8() iter.Seq[Reg] {
	return func(yield func(Reg) bool) {
		for reg := REG_AL; reg < NUM_REGS; reg++ {
			if !yield(reg) {
				return
			}
		}
	}
}
