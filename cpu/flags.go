package cpu

import (
	"fmt"
	"strings"
)

// Flag bit positions in the flags register.
const (
	CF_OFFS = 0  // Carry
	PF_OFFS = 2  // Parity
	AF_OFFS = 4  // Auxiliary carry
	ZF_OFFS = 6  // Zero
	SF_OFFS = 7  // Sign
	TF_OFFS = 8  // Trap
	IF_OFFS = 9  // Interrupt enable
	DF_OFFS = 10 // Direction
	OF_OFFS = 11 // Overflow
)

// Flag is a mask of one or more flags register bits.
type Flag uint16

const (
	FLAG_CF = Flag(1 << CF_OFFS)
	FLAG_PF = Flag(1 << PF_OFFS)
	FLAG_AF = Flag(1 << AF_OFFS)
	FLAG_ZF = Flag(1 << ZF_OFFS)
	FLAG_SF = Flag(1 << SF_OFFS)
	FLAG_TF = Flag(1 << TF_OFFS)
	FLAG_IF = Flag(1 << IF_OFFS)
	FLAG_DF = Flag(1 << DF_OFFS)
	FLAG_OF = Flag(1 << OF_OFFS)

	FLAGS_STATUS  = FLAG_CF | FLAG_PF | FLAG_AF | FLAG_ZF | FLAG_SF | FLAG_OF // Arithmetic result flags.
	FLAGS_CONTROL = FLAG_TF | FLAG_IF | FLAG_DF                               // Processor control flags.
	FLAGS_DEFINED = FLAGS_STATUS | FLAGS_CONTROL                              // All named flags.
)

const (
	FLAGS_STUCK_BITS = uint16(1 << 15)  // Bit 15 always reads as 1 on the 8086.
	FLAGS_RESET      = FLAGS_STUCK_BITS // Flags value after reset.
)

// StuckFlags applies the hardwired bits to a flags value.
func StuckFlags(value uint16) uint16 {
	return value | FLAGS_STUCK_BITS
}

// Named flags, most significant first.
var _flag_names = []struct {
	name string
	flag Flag
}{
	{"of", FLAG_OF},
	{"df", FLAG_DF},
	{"if", FLAG_IF},
	{"tf", FLAG_TF},
	{"sf", FLAG_SF},
	{"zf", FLAG_ZF},
	{"af", FLAG_AF},
	{"pf", FLAG_PF},
	{"cf", FLAG_CF},
}

// ParseFlag returns the flag mask for a case-insensitive flag name, ie 'cf'.
func ParseFlag(name string) (flag Flag, err error) {
	lower := strings.ToLower(name)
	for _, entry := range _flag_names {
		if entry.name == lower {
			flag = entry.flag
			return
		}
	}

	err = ErrFlagInvalid
	return
}

func (flag Flag) String() string {
	var names []string
	for _, entry := range _flag_names {
		if flag&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	if rest := flag &^ FLAGS_DEFINED; rest != 0 {
		names = append(names, fmt.Sprintf("%#04x", uint16(rest)))
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// Flags is a flags register value.
type Flags uint16

// String returns the ODITSZAPC form of the flags, with '-' for clear bits.
func (flags Flags) String() string {
	var text [9]byte
	for n, entry := range _flag_names {
		if uint16(flags)&uint16(entry.flag) != 0 {
			text[n] = entry.name[0] - 'a' + 'A'
		} else {
			text[n] = '-'
		}
	}
	return string(text[:])
}

// FlagIsSet returns true if all bits of flag are set in the store.
func FlagIsSet(s Store, flag Flag) bool {
	return s.GetFlags()&uint16(flag) == uint16(flag)
}

// SetFlag sets or clears the bits of flag in the store.
func SetFlag(s Store, flag Flag, on bool) {
	value := s.GetFlags()
	if on {
		value |= uint16(flag)
	} else {
		value &^= uint16(flag)
	}
	s.SetFlags(value)
}
