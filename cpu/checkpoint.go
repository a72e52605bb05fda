package cpu

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Checkpoint wraps a Store with a bounded stack of saved states.
type Checkpoint struct {
	Store       // Wrapped store.
	Stack Stack // Saved states, most recent last.
}

var _ Store = (*Checkpoint)(nil)

// Snapshot reads the full state of a store through its accessors.
func Snapshot(s Store) (st State, err error) {
	for reg := range Registers16() {
		st.Register[reg], err = s.Get(reg)
		if err != nil {
			return
		}
	}
	st.Flags = s.GetFlags()

	return
}

// Apply writes a full state into a store through its accessors,
// stopping at the first failed write.
func Apply(s Store, st State) (err error) {
	for reg := range Registers16() {
		err = s.Set(reg, st.Register[reg])
		if err != nil {
			return
		}
	}
	s.SetFlags(st.Flags)

	return
}

// Push saves the current state.
func (cp *Checkpoint) Push() (err error) {
	st, err := Snapshot(cp.Store)
	if err != nil {
		return
	}

	return cp.Stack.Push(st)
}

// Pop restores the most recently saved state. The state stays saved
// if it cannot be restored.
func (cp *Checkpoint) Pop() (err error) {
	st, ok := cp.Stack.Peek()
	if !ok {
		err = ErrStackEmpty
		return
	}

	err = Apply(cp.Store, st)
	if err != nil {
		return
	}

	cp.Stack.Pop()
	return
}

// Drop discards all saved states.
func (cp *Checkpoint) Drop() {
	cp.Stack.Reset()
}

// Depth returns the number of saved states.
func (cp *Checkpoint) Depth() int {
	return len(cp.Stack.Data)
}

// Fingerprint hashes the state, little endian, registers then flags.
func (st State) Fingerprint() uint64 {
	var buf [2 * (NUM_16BIT_REGS + 1)]byte
	for n, val := range st.Register {
		binary.LittleEndian.PutUint16(buf[2*n:], val)
	}
	binary.LittleEndian.PutUint16(buf[2*NUM_16BIT_REGS:], st.Flags)

	return xxhash.Sum64(buf[:])
}
