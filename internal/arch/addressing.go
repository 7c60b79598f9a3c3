package arch

import "fmt"

// AddressingMode defines how the operand of an instruction is encoded.
type AddressingMode uint8

// addressing modes of the 6502 family.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	ZeroPageIndirect // (zp), 65C02
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect                // (abs)
	IndirectX               // (zp,x)
	IndirectY               // (zp),y
	AbsoluteIndexedIndirect // (abs,x), 65C02
	Relative
)

// addressing modes added by the 65816.
const (
	AbsoluteLong AddressingMode = iota + Relative + 1
	AbsoluteLongX
	IndirectLong  // [dp]
	IndirectLongY // [dp],y
	StackRelative
	StackRelativeIndirectY
	RelativeLong
	BlockMove
	AbsoluteIndirectLong // [abs]
)

var addressingModeNames = [...]string{
	Implied:                 "implied",
	Accumulator:             "accumulator",
	Immediate:               "immediate",
	ZeroPage:                "zeropage",
	ZeroPageX:               "zeropage,x",
	ZeroPageY:               "zeropage,y",
	ZeroPageIndirect:        "(zeropage)",
	Absolute:                "absolute",
	AbsoluteX:               "absolute,x",
	AbsoluteY:               "absolute,y",
	Indirect:                "(absolute)",
	IndirectX:               "(zeropage,x)",
	IndirectY:               "(zeropage),y",
	AbsoluteIndexedIndirect: "(absolute,x)",
	Relative:                "relative",
	AbsoluteLong:            "long",
	AbsoluteLongX:           "long,x",
	IndirectLong:            "[direct]",
	IndirectLongY:           "[direct],y",
	StackRelative:           "stack,s",
	StackRelativeIndirectY:  "(stack,s),y",
	RelativeLong:            "relative long",
	BlockMove:               "block move",
	AbsoluteIndirectLong:    "[absolute]",
}

// String returns the name of the addressing mode.
func (m AddressingMode) String() string {
	if int(m) < len(addressingModeNames) {
		return addressingModeNames[m]
	}
	return fmt.Sprintf("addressing(%d)", uint8(m))
}
