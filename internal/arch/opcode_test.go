package arch

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func testTables() (*Table, *Table) {
	base := NewTable("base", map[string]map[AddressingMode]Encoding{
		"lda": {
			Immediate: {Opcode: 0xA9, Size: 2},
			Absolute:  {Opcode: 0xAD, Size: 3},
		},
		"JMP": {
			Absolute: {Opcode: 0x4C, Size: 3},
			Indirect: {Opcode: 0x6C, Size: 3},
		},
		"NOP": {
			Implied: {Opcode: 0xEA, Size: 1},
		},
	})
	derived := NewTable("derived", map[string]map[AddressingMode]Encoding{
		"LDA": {
			ZeroPageIndirect: {Opcode: 0xB2, Size: 2},
		},
		"jmp": {
			Indirect: {Opcode: 0x6D, Size: 3},
		},
		"BRA": {
			Relative: {Opcode: 0x80, Size: 2},
		},
	})
	return base, derived
}

func TestTable(t *testing.T) {
	base, _ := testTables()

	enc, ok := base.Lookup("Lda", Immediate)
	assert.True(t, ok)
	assert.Equal(t, Encoding{Opcode: 0xA9, Size: 2}, enc)

	_, ok = base.Lookup("LDA", ZeroPageX)
	assert.False(t, ok)

	assert.True(t, base.Has("jmp"))
	assert.False(t, base.Has("BRA"))
	assert.Equal(t, 5, base.Len())
	assert.Equal(t, []string{"JMP", "LDA", "NOP"}, base.Mnemonics())
	assert.Equal(t, "base", base.Name())
}

func TestTableAddReplaces(t *testing.T) {
	table := NewTable("test", nil)
	table.Add("nop", Implied, Encoding{Opcode: 0xEA, Size: 1})
	table.Add("NOP", Implied, Encoding{Opcode: 0x1A, Size: 1})

	enc, ok := table.Lookup("nop", Implied)
	assert.True(t, ok)
	assert.Equal(t, byte(0x1A), enc.Opcode)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1, len(table.Modes("NOP")))
}

func TestTableModesIsCopy(t *testing.T) {
	base, _ := testTables()

	modes := base.Modes("JMP")
	assert.Equal(t, 2, len(modes))
	modes[0] = Relative
	_ = append(modes[:0], Implied)

	_, ok := base.Lookup("JMP", Absolute)
	assert.True(t, ok)
	for _, mode := range base.Modes("JMP") {
		assert.True(t, mode == Absolute || mode == Indirect)
	}
}

func TestInstructionSetFallback(t *testing.T) {
	base, derived := testTables()
	is := NewInstructionSet("derived", []string{"bra"}, derived, base)

	t.Run("base entry is found through derived set", func(t *testing.T) {
		direct, ok := base.Lookup("LDA", Absolute)
		assert.True(t, ok)

		enc, ok := is.TryEncode("lda", Absolute)
		assert.True(t, ok)
		assert.Equal(t, direct, enc)
	})

	t.Run("derived entry overrides base entry", func(t *testing.T) {
		enc, ok := is.TryEncode("JMP", Indirect)
		assert.True(t, ok)
		assert.Equal(t, byte(0x6D), enc.Opcode)
	})

	t.Run("derived only entry", func(t *testing.T) {
		enc, ok := is.TryEncode("bra", Relative)
		assert.True(t, ok)
		assert.Equal(t, Encoding{Opcode: 0x80, Size: 2}, enc)
	})

	t.Run("unknown pair", func(t *testing.T) {
		_, ok := is.TryEncode("BRA", Absolute)
		assert.False(t, ok)
		_, ok = is.TryEncode("XYZ", Implied)
		assert.False(t, ok)
	})
}

func TestInstructionSetMnemonicsAndModes(t *testing.T) {
	base, derived := testTables()
	is := NewInstructionSet("derived", nil, derived, base)

	assert.Equal(t, []string{"BRA", "JMP", "LDA", "NOP"}, is.AllMnemonics())
	assert.Equal(t, []AddressingMode{Immediate, ZeroPageIndirect, Absolute}, is.SupportedModes("lda"))
	assert.Equal(t, []AddressingMode{Absolute, Indirect}, is.SupportedModes("JMP"))
	assert.Equal(t, 0, len(is.SupportedModes("XYZ")))
	assert.Equal(t, 2, len(is.Tables()))
}

func TestIsBranchInstruction(t *testing.T) {
	is := NewInstructionSet("test", []string{"BNE", "beq"})

	assert.True(t, is.IsBranchInstruction("bne"))
	assert.True(t, is.IsBranchInstruction("BEQ"))
	assert.False(t, is.IsBranchInstruction("JMP"))
	assert.False(t, is.IsBranchInstruction("unknown"))
}
