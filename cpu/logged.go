package cpu

import (
	"log"
)

// Logged wraps a Store and traces every access through the log package.
// Failed accesses are always logged.
type Logged struct {
	Store          // Wrapped store.
	Verbose bool   // Set to log successful accesses.
	Prefix  string // Message prefix, "cpu" if empty.
}

var _ Store = (*Logged)(nil)

func (lg *Logged) prefix() string {
	if len(lg.Prefix) == 0 {
		return "cpu"
	}
	return lg.Prefix
}

func (lg *Logged) trace(err error, format string, args ...any) {
	if err != nil {
		log.Printf("%v: %v", lg.prefix(), err)
		return
	}
	if lg.Verbose {
		log.Printf(lg.prefix()+": "+format, args...)
	}
}

func (lg *Logged) Reset() {
	lg.Store.Reset()
	lg.trace(nil, "reset")
}

func (lg *Logged) Set(reg Reg, value uint16) (err error) {
	err = lg.Store.Set(reg, value)
	lg.trace(err, "set %v=0x%04x", reg, value)
	return
}

func (lg *Logged) Get(reg Reg) (value uint16, err error) {
	value, err = lg.Store.Get(reg)
	lg.trace(err, "get %v=0x%04x", reg, value)
	return
}

func (lg *Logged) Set8(reg Reg, value uint8) (err error) {
	err = lg.Store.Set8(reg, value)
	lg.trace(err, "set %v=0x%02x", reg, value)
	return
}

func (lg *Logged) Get8(reg Reg) (value uint8, err error) {
	value, err = lg.Store.Get8(reg)
	lg.trace(err, "get %v=0x%02x", reg, value)
	return
}

func (lg *Logged) GetFlags() (value uint16) {
	value = lg.Store.GetFlags()
	lg.trace(nil, "get flags=0x%04x %v", value, Flags(value))
	return
}

func (lg *Logged) SetFlags(value uint16) {
	lg.Store.SetFlags(value)
	lg.trace(nil, "set flags=0x%04x %v", value, Flags(value))
}
