package m6502

import "github.com/retroenv/retroasm/internal/arch"

// accumulatorGroup contains the instructions that share the 65816 long and stack
// relative addressing modes, mapped to the opcode base of their group.
var accumulatorGroup = []entry{
	{mnemonic: "ORA", opcode: 0x00},
	{mnemonic: "AND", opcode: 0x20},
	{mnemonic: "EOR", opcode: 0x40},
	{mnemonic: "ADC", opcode: 0x60},
	{mnemonic: "STA", opcode: 0x80},
	{mnemonic: "LDA", opcode: 0xA0},
	{mnemonic: "CMP", opcode: 0xC0},
	{mnemonic: "SBC", opcode: 0xE0},
}

// offsets of the 65816 addressing modes inside an accumulator group.
var accumulatorGroupModes = []struct {
	mode   arch.AddressingMode
	offset byte
}{
	{arch.StackRelative, 0x03},
	{arch.IndirectLong, 0x07},
	{arch.AbsoluteLong, 0x0F},
	{arch.StackRelativeIndirectY, 0x13},
	{arch.IndirectLongY, 0x17},
	{arch.AbsoluteLongX, 0x1F},
}

// WDC65816 returns the table of the instructions and addressing modes that the 65816
// adds to the 65C02.
func WDC65816() *arch.Table {
	table := newTable(wdc65816TableName, wdc65816Entries)
	for _, group := range accumulatorGroup {
		for _, m := range accumulatorGroupModes {
			table.Add(group.mnemonic, m.mode, arch.Encoding{
				Opcode: group.opcode + m.offset,
				Size:   modeSize(m.mode),
			})
		}
	}
	return table
}

var wdc65816Entries = []entry{
	{"BRL", arch.RelativeLong, 0x82},
	{"COP", arch.Immediate, 0x02},
	{"WDM", arch.Immediate, 0x42},
	{"JML", arch.AbsoluteLong, 0x5C},
	{"JML", arch.AbsoluteIndirectLong, 0xDC},
	{"JMP", arch.AbsoluteLong, 0x5C},
	{"JMP", arch.AbsoluteIndirectLong, 0xDC},
	{"JSL", arch.AbsoluteLong, 0x22},
	{"JSR", arch.AbsoluteLong, 0x22},
	{"JSR", arch.AbsoluteIndexedIndirect, 0xFC},
	{"MVN", arch.BlockMove, 0x54},
	{"MVP", arch.BlockMove, 0x44},
	{"PEA", arch.Absolute, 0xF4},
	{"PEI", arch.ZeroPageIndirect, 0xD4},
	{"PER", arch.RelativeLong, 0x62},
	{"PHB", arch.Implied, 0x8B},
	{"PHD", arch.Implied, 0x0B},
	{"PHK", arch.Implied, 0x4B},
	{"PLB", arch.Implied, 0xAB},
	{"PLD", arch.Implied, 0x2B},
	{"REP", arch.Immediate, 0xC2},
	{"SEP", arch.Immediate, 0xE2},
	{"RTL", arch.Implied, 0x6B},
	{"STP", arch.Implied, 0xDB},
	{"WAI", arch.Implied, 0xCB},
	{"TCD", arch.Implied, 0x5B},
	{"TDC", arch.Implied, 0x7B},
	{"TCS", arch.Implied, 0x1B},
	{"TSC", arch.Implied, 0x3B},
	{"TXY", arch.Implied, 0x9B},
	{"TYX", arch.Implied, 0xBB},
	{"XBA", arch.Implied, 0xEB},
	{"XCE", arch.Implied, 0xFB},
}
