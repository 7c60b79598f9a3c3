package m6502

import "github.com/retroenv/retroasm/internal/arch"

// CMOS returns the table of the instructions and addressing modes that the 65C02 adds
// to the NMOS 6502.
func CMOS() *arch.Table {
	return newTable(cmosTableName, cmosEntries)
}

var cmosEntries = []entry{
	{"LDA", arch.ZeroPageIndirect, 0xB2},
	{"STA", arch.ZeroPageIndirect, 0x92},
	{"STZ", arch.ZeroPage, 0x64},
	{"STZ", arch.ZeroPageX, 0x74},
	{"STZ", arch.Absolute, 0x9C},
	{"STZ", arch.AbsoluteX, 0x9E},
	{"ADC", arch.ZeroPageIndirect, 0x72},
	{"SBC", arch.ZeroPageIndirect, 0xF2},
	{"CMP", arch.ZeroPageIndirect, 0xD2},
	{"BIT", arch.Immediate, 0x89},
	{"BIT", arch.ZeroPageX, 0x34},
	{"BIT", arch.AbsoluteX, 0x3C},
	{"BRA", arch.Relative, 0x80},
	{"AND", arch.ZeroPageIndirect, 0x32},
	{"ORA", arch.ZeroPageIndirect, 0x12},
	{"EOR", arch.ZeroPageIndirect, 0x52},
	{"INC", arch.Accumulator, 0x1A},
	{"DEC", arch.Accumulator, 0x3A},
	{"JMP", arch.AbsoluteIndexedIndirect, 0x7C},
	{"TRB", arch.ZeroPage, 0x14},
	{"TRB", arch.Absolute, 0x1C},
	{"TSB", arch.ZeroPage, 0x04},
	{"TSB", arch.Absolute, 0x0C},
	{"PHX", arch.Implied, 0xDA},
	{"PLX", arch.Implied, 0xFA},
	{"PHY", arch.Implied, 0x5A},
	{"PLY", arch.Implied, 0x7A},
}
