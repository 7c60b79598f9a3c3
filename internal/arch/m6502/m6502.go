// Package m6502 provides the instruction tables of the 6502 CPU family.
//
// The NMOS 6502 table is the base of the family, the unofficial opcodes, the 65C02
// and the 65816 are modeled as tables that only contain what the variant adds.
package m6502

import (
	"fmt"

	"github.com/retroenv/retroasm/internal/arch"
)

const (
	baseTableName       = "6502"
	unofficialTableName = "6502x"
	cmosTableName       = "65c02"
	wdc65816TableName   = "65816"
)

// NewInstructionSet returns the instruction set of the given CPU variant of the 6502 family.
func NewInstructionSet(cpu arch.CPU) (*arch.InstructionSet, error) {
	switch cpu {
	case arch.NMOS6502:
		return arch.NewInstructionSet(cpu.String(), nmosBranches(), Base()), nil
	case arch.NMOS6502X:
		return arch.NewInstructionSet(cpu.String(), nmosBranches(), Unofficial(), Base()), nil
	case arch.CMOS65C02:
		return arch.NewInstructionSet(cpu.String(), cmosBranches(), CMOS(), Base()), nil
	case arch.WDC65816:
		return arch.NewInstructionSet(cpu.String(), wdc65816Branches(), WDC65816(), CMOS(), Base()), nil
	default:
		return nil, fmt.Errorf("%w: cpu %s is not part of the 6502 family", arch.ErrUnknownTarget, cpu)
	}
}

// modeSize returns the instruction size for an addressing mode. For the 65816 the
// size of immediate operands is given for 8 bit accumulator and index registers.
func modeSize(mode arch.AddressingMode) int {
	switch mode {
	case arch.Implied, arch.Accumulator:
		return 1
	case arch.Immediate, arch.ZeroPage, arch.ZeroPageX, arch.ZeroPageY,
		arch.ZeroPageIndirect, arch.IndirectX, arch.IndirectY, arch.Relative,
		arch.IndirectLong, arch.IndirectLongY, arch.StackRelative, arch.StackRelativeIndirectY:
		return 2
	case arch.AbsoluteLong, arch.AbsoluteLongX:
		return 4
	default:
		return 3
	}
}

type entry struct {
	mnemonic string
	mode     arch.AddressingMode
	opcode   byte
}

func newTable(name string, entries []entry) *arch.Table {
	table := arch.NewTable(name, nil)
	for _, e := range entries {
		table.Add(e.mnemonic, e.mode, arch.Encoding{
			Opcode: e.opcode,
			Size:   modeSize(e.mode),
		})
	}
	return table
}
