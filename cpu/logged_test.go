package cpu

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	flags := log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return buf
}

func TestLogged_Verbose(t *testing.T) {
	assert := assert.New(t)
	buf := captureLog(t)

	lg := &Logged{Store: NewRegisterFile(), Verbose: true}
	assert.NoError(lg.Set(REG_AX, 0x1234))
	al, err := lg.Get8(REG_AL)
	assert.NoError(err)
	assert.Equal(uint8(0x34), al)
	lg.SetFlags(uint16(FLAG_CF))

	text := buf.String()
	assert.Contains(text, "cpu: set ax=0x1234\n")
	assert.Contains(text, "cpu: get al=0x34\n")
	assert.Contains(text, "cpu: set flags=0x0001 --------C\n")
}

func TestLogged_Quiet(t *testing.T) {
	assert := assert.New(t)
	buf := captureLog(t)

	lg := &Logged{Store: NewRegisterFile(), Prefix: "engine"}
	assert.NoError(lg.Set(REG_AX, 0x1234))
	assert.Empty(buf.String())

	err := lg.Set(REG_AL, 0x12)
	assert.ErrorIs(err, ErrRegisterInvalid)
	assert.Contains(buf.String(), "engine: ")
	assert.Contains(buf.String(), "register invalid")
}
