// Package sm83 provides the instruction table of the SM83, the CPU of the Game Boy.
//
// The table covers the instructions whose encoding is fully determined by the mnemonic
// and addressing mode. Instructions that encode register operands in the opcode are
// encoded by the code generator from the register numbers.
package sm83

import "github.com/retroenv/retroasm/internal/arch"

const tableName = "sm83"

// NewInstructionSet returns the SM83 instruction set.
func NewInstructionSet() *arch.InstructionSet {
	return arch.NewInstructionSet(tableName, []string{"JR"}, Table())
}

// Table returns the SM83 instruction table.
func Table() *arch.Table {
	table := arch.NewTable(tableName, nil)
	for _, e := range entries {
		table.Add(e.mnemonic, e.mode, arch.Encoding{
			Opcode: e.opcode,
			Size:   e.size,
		})
	}
	return table
}

type entry struct {
	mnemonic string
	mode     arch.AddressingMode
	opcode   byte
	size     int
}

var entries = []entry{
	{"NOP", arch.Implied, 0x00, 1},
	{"STOP", arch.Implied, 0x10, 2}, // followed by a padding byte
	{"HALT", arch.Implied, 0x76, 1},
	{"DI", arch.Implied, 0xF3, 1},
	{"EI", arch.Implied, 0xFB, 1},
	{"RET", arch.Implied, 0xC9, 1},
	{"RETI", arch.Implied, 0xD9, 1},
	{"RLCA", arch.Implied, 0x07, 1},
	{"RRCA", arch.Implied, 0x0F, 1},
	{"RLA", arch.Implied, 0x17, 1},
	{"RRA", arch.Implied, 0x1F, 1},
	{"DAA", arch.Implied, 0x27, 1},
	{"CPL", arch.Implied, 0x2F, 1},
	{"SCF", arch.Implied, 0x37, 1},
	{"CCF", arch.Implied, 0x3F, 1},

	// 8 bit arithmetic with the accumulator as implicit destination
	{"ADD", arch.Immediate, 0xC6, 2},
	{"ADC", arch.Immediate, 0xCE, 2},
	{"SUB", arch.Immediate, 0xD6, 2},
	{"SBC", arch.Immediate, 0xDE, 2},
	{"AND", arch.Immediate, 0xE6, 2},
	{"XOR", arch.Immediate, 0xEE, 2},
	{"OR", arch.Immediate, 0xF6, 2},
	{"CP", arch.Immediate, 0xFE, 2},

	{"JP", arch.Absolute, 0xC3, 3},
	{"CALL", arch.Absolute, 0xCD, 3},
	{"JR", arch.Relative, 0x18, 2},
}
