package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_Reset(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for reg := range Registers16() {
		val, err := rf.Get(reg)
		assert.NoError(err)
		assert.Equal(uint16(0), val, reg.String())
	}
	assert.Equal(uint16(0x8000), rf.GetFlags())

	for reg := range Registers16() {
		assert.NoError(rf.Set(reg, 0xa5a5))
	}
	rf.SetFlags(0x0fff)

	rf.Reset()
	first := rf.State()
	rf.Reset()
	assert.Equal(first, rf.State())
	assert.Equal(State{Flags: FLAGS_RESET}, first)
}

func TestRegisterFile_ResetState(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{ResetState: HardwareReset()}
	rf.Set(REG_IP, 0x1234)
	rf.Reset()

	cs, err := rf.Get(REG_CS)
	assert.NoError(err)
	assert.Equal(uint16(0xffff), cs)

	ip, err := rf.Get(REG_IP)
	assert.NoError(err)
	assert.Equal(uint16(0), ip)
	assert.Equal(uint16(0x8000), rf.GetFlags())

	vector := HardwareReset()
	vector[REG_CS] = 0
	assert.Equal(uint16(0xffff), HardwareReset()[REG_CS])
}

func TestRegisterFile_SetGet(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for reg := range Registers16() {
		value := uint16(0x1111 * (int(reg) + 1))
		assert.NoError(rf.Set(reg, value))
	}
	for reg := range Registers16() {
		value, err := rf.Get(reg)
		assert.NoError(err)
		assert.Equal(uint16(0x1111*(int(reg)+1)), value, reg.String())
	}
}

func TestRegisterFile_Alias(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		parent Reg
		lo     Reg
		hi     Reg
	}){
		{REG_AX, REG_AL, REG_AH},
		{REG_CX, REG_CL, REG_CH},
		{REG_DX, REG_DL, REG_DH},
		{REG_BX, REG_BL, REG_BH},
	}

	rf := NewRegisterFile()
	for _, entry := range table {
		for _, v := range []uint16{0x0000, 0x1234, 0xff00, 0x00ff, 0xfedc} {
			assert.NoError(rf.Set(entry.parent, v))

			lo, err := rf.Get8(entry.lo)
			assert.NoError(err)
			assert.Equal(uint8(v&0xff), lo, entry.lo.String())

			hi, err := rf.Get8(entry.hi)
			assert.NoError(err)
			assert.Equal(uint8((v>>8)&0xff), hi, entry.hi.String())
		}

		assert.NoError(rf.Set(entry.parent, 0x1234))
		assert.NoError(rf.Set8(entry.lo, 0xcd))
		val, _ := rf.Get(entry.parent)
		assert.Equal(uint16(0x12cd), val)

		assert.NoError(rf.Set8(entry.hi, 0xab))
		val, _ = rf.Get(entry.parent)
		assert.Equal(uint16(0xabcd), val)
	}
}

func TestRegisterFile_AliasIsolation(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for reg := range Registers16() {
		assert.NoError(rf.Set(reg, 0x5a5a))
	}

	assert.NoError(rf.Set8(REG_DH, 0x00))

	for reg := range Registers16() {
		val, _ := rf.Get(reg)
		if reg == REG_DX {
			assert.Equal(uint16(0x005a), val)
		} else {
			assert.Equal(uint16(0x5a5a), val, reg.String())
		}
	}
}

func TestRegisterFile_Scenario(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.Reset()
	assert.NoError(rf.Set(REG_CX, 0x00ff))

	cl, err := rf.Get8(REG_CL)
	assert.NoError(err)
	assert.Equal(uint8(0xff), cl)

	ch, err := rf.Get8(REG_CH)
	assert.NoError(err)
	assert.Equal(uint8(0x00), ch)

	assert.NoError(rf.Set8(REG_CH, 0xab))
	cx, err := rf.Get(REG_CX)
	assert.NoError(err)
	assert.Equal(uint16(0xabff), cx)
}

func TestRegisterFile_Flags(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for _, v := range []uint16{0x0000, 0x0001, 0x7fff, 0x8000, 0xffff, 0x0ad5, 0x7002} {
		rf.SetFlags(v)
		assert.Equal(uint16(0x8000), rf.GetFlags()&0x8000)
		assert.Equal(v|0x8000, rf.GetFlags())
	}
}

func TestRegisterFile_InvalidRegister(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for reg := range Registers16() {
		assert.NoError(rf.Set(reg, 0x4321))
	}
	before := rf.State()

	for _, reg := range []Reg{NUM_16BIT_REGS, REG_AL, REG_BH, NUM_REGS, NUM_REGS + 7, -1} {
		err := rf.Set(reg, 0xdead)
		assert.ErrorIs(err, ErrRegisterInvalid, reg.String())

		val, err := rf.Get(reg)
		assert.ErrorIs(err, ErrRegisterInvalid, reg.String())
		assert.Equal(uint16(0), val)

		var er *ErrRegister
		assert.True(errors.As(err, &er))
		assert.Equal(reg, er.Reg)
	}

	for _, reg := range []Reg{REG_AX, REG_DS, REG_IP, NUM_REGS, -1} {
		err := rf.Set8(reg, 0xee)
		assert.ErrorIs(err, ErrRegisterInvalid, reg.String())

		_, err = rf.Get8(reg)
		assert.ErrorIs(err, ErrRegisterInvalid, reg.String())
	}

	assert.Equal(before, rf.State())
}

func TestRegisterFile_Restore(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.Set(REG_SI, 0x1000)
	rf.SetFlags(uint16(FLAG_ZF | FLAG_CF))
	st := rf.State()

	rf.Reset()
	assert.NotEqual(st, rf.State())

	rf.Restore(State{Register: st.Register, Flags: uint16(FLAG_ZF | FLAG_CF)})
	assert.Equal(st, rf.State())
}

func TestRegisterFile_String(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.Set(REG_AX, 0xbeef)
	rf.SetFlags(uint16(FLAG_CF | FLAG_ZF))

	text := rf.String()
	assert.Contains(text, "   ax: BEEF\n")
	assert.Contains(text, "   ds: 0000\n")
	assert.Contains(text, "flags: 8041 -----Z--C\n")
}

func TestRegisterFile_Defines(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	defines := map[string]string{}
	for key, value := range rf.Defines() {
		defines[key] = value
	}

	assert.Equal("0x1", defines["CF"])
	assert.Equal("0x800", defines["OF"])
	assert.Equal("11", defines["OF_OFFS"])
	assert.Equal("0x8000", defines["FLAGS_STUCK_BITS"])
}
