package m6502

import (
	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// addressingModes maps the addressing modes of the NMOS opcode table to the
// assembler addressing modes.
var addressingModes = map[m6502.AddressingMode]arch.AddressingMode{
	m6502.ImpliedAddressing:     arch.Implied,
	m6502.AccumulatorAddressing: arch.Accumulator,
	m6502.ImmediateAddressing:   arch.Immediate,
	m6502.ZeroPageAddressing:    arch.ZeroPage,
	m6502.ZeroPageXAddressing:   arch.ZeroPageX,
	m6502.ZeroPageYAddressing:   arch.ZeroPageY,
	m6502.AbsoluteAddressing:    arch.Absolute,
	m6502.AbsoluteXAddressing:   arch.AbsoluteX,
	m6502.AbsoluteYAddressing:   arch.AbsoluteY,
	m6502.IndirectAddressing:    arch.Indirect,
	m6502.IndirectXAddressing:   arch.IndirectX,
	m6502.IndirectYAddressing:   arch.IndirectY,
	m6502.RelativeAddressing:    arch.Relative,
}

// Base returns the table of all official NMOS 6502 instructions.
func Base() *arch.Table {
	return opcodeTable(baseTableName, false)
}

// Unofficial returns the table of the unofficial NMOS opcodes. Several opcodes share
// a mnemonic and addressing mode, the lowest opcode is used for encoding. Pairs that
// the official table encodes are left out so that the unofficial table never shadows
// an official encoding.
func Unofficial() *arch.Table {
	return opcodeTable(unofficialTableName, true)
}

// opcodeTable builds a table from the opcode table of the NMOS 6502, containing either
// the official or the unofficial instructions. The first opcode of a mnemonic and
// addressing mode pair is used for encoding.
func opcodeTable(name string, unofficial bool) *arch.Table {
	var official *arch.Table
	if unofficial {
		official = Base()
	}
	table := arch.NewTable(name, nil)

	for b, opcode := range m6502.Opcodes {
		ins := opcode.Instruction
		if ins == nil || ins.Unofficial != unofficial {
			continue
		}
		mode, ok := addressingModes[m6502.AddressingMode(opcode.Addressing)]
		if !ok {
			continue
		}
		if official != nil {
			if _, ok := official.Lookup(ins.Name, mode); ok {
				continue
			}
		}
		if _, ok := table.Lookup(ins.Name, mode); ok {
			continue
		}

		table.Add(ins.Name, mode, arch.Encoding{
			Opcode: byte(b),
			Size:   modeSize(mode),
		})
	}
	return table
}
