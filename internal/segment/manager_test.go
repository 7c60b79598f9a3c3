package segment

import (
	"testing"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestManagerDefine(t *testing.T) {
	m := New(log.NewTestLogger(t))
	first := program.Location{File: "main.asm", Line: 3, Column: 1}
	second := program.Location{File: "main.asm", Line: 9, Column: 1}

	seg := m.Define("CODE", 0x8000, 0x4000, Code, first)
	assert.NotNil(t, seg)
	assert.Equal(t, 0, seg.Bank())
	assert.False(t, m.HasErrors())
	assert.Nil(t, m.Err())

	dup := m.Define("code", 0xC000, 0x100, Data, second)
	assert.True(t, dup == seg)
	assert.Equal(t, uint32(0x8000), dup.StartAddress())
	assert.Equal(t, 0x4000, dup.MaxSize())
	assert.Equal(t, Code, dup.Type())
	assert.Equal(t, first, dup.Location())
	assert.Equal(t, 1, m.Len())

	errs := m.Errors()
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, second, errs[0].Location)
	assert.Contains(t, errs[0].Message, "main.asm:3:1")
	assert.Error(t, m.Err())
	assert.ErrorContains(t, m.Err(), "main.asm:9:1: ")

	again := m.Define("Code", 0, 1, Bss, second)
	assert.True(t, again == seg)
	assert.Equal(t, 2, len(m.Errors()))
}

func TestManagerSwitchTo(t *testing.T) {
	m := New(log.NewTestLogger(t))
	assert.Nil(t, m.Active())

	assert.False(t, m.Emit(1, program.Location{}))
	assert.Equal(t, 1, len(m.Errors()))

	code := m.Define("CODE", 0x8000, 0x100, Code, program.Location{})
	data := m.Define("DATA", 0xC000, 0x100, Data, program.Location{})

	assert.True(t, m.SwitchTo("code", program.Location{}))
	assert.True(t, m.Active() == code)

	assert.False(t, m.SwitchTo("VECTORS", program.Location{Line: 4}))
	assert.True(t, m.Active() == code)
	assert.Equal(t, 2, len(m.Errors()))

	assert.True(t, m.SwitchTo("DATA", program.Location{}))
	assert.True(t, m.Emit(0x42, program.Location{}))
	assert.Equal(t, []byte{0x42}, data.Bytes())
	assert.Equal(t, 0, len(code.Bytes()))
}

func TestManagerSwitchBank(t *testing.T) {
	m := New(log.NewTestLogger(t))

	m.SwitchBank(2, program.Location{})
	assert.Equal(t, 2, m.CurrentBank())
	bank2 := m.Define("BANK2", 0x8000, 0x4000, Rom, program.Location{})
	assert.Equal(t, 2, bank2.Bank())

	m.SwitchBank(-1, program.Location{})
	assert.Equal(t, 2, m.CurrentBank())
	assert.Equal(t, 1, len(m.Errors()))

	m.SwitchBank(3, program.Location{})
	bank3 := m.Define("BANK3", 0x8000, 0x4000, Rom, program.Location{})
	assert.Equal(t, 3, bank3.Bank())
	assert.Equal(t, 2, bank2.Bank())

	// overlapping ranges in different banks are accepted
	m.ValidateSegments()
	assert.Equal(t, 1, len(m.Errors()))
}

func TestManagerErrorsIsCopy(t *testing.T) {
	m := New(log.NewTestLogger(t))
	m.SwitchTo("MISSING", program.Location{})

	errs := m.Errors()
	_ = append(errs[:0], Error{Message: "x"})

	errs = m.Errors()
	assert.Equal(t, 1, len(errs))
	assert.Contains(t, errs[0].Message, "MISSING")
}

func TestManagerBankNumberFormatting(t *testing.T) {
	m := New(log.NewTestLogger(t))
	m.SwitchBank(-12345, program.Location{})

	errs := m.Errors()
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "invalid bank number -12345", errs[0].Message)
}

func TestManagerOrderedSegments(t *testing.T) {
	m := New(log.NewTestLogger(t))
	m.Define("HIGH", 0xC000, 0x10, Code, program.Location{})
	m.SwitchBank(1, program.Location{})
	m.Define("B1", 0x8000, 0x10, Rom, program.Location{})
	m.SwitchBank(0, program.Location{})
	m.Define("B0", 0x8000, 0x10, Rom, program.Location{})
	m.Define("ZP", 0x0000, 0x10, ZeroPage, program.Location{})

	segments := m.OrderedSegments()
	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		names = append(names, seg.Name())
	}
	assert.Equal(t, []string{"ZP", "B0", "B1", "HIGH"}, names)
}

func TestManagerOutputSegments(t *testing.T) {
	m := New(log.NewTestLogger(t))
	m.Define("DATA", 0xC000, 0x10, Data, program.Location{})
	m.Define("EMPTY", 0xE000, 0x10, Code, program.Location{})
	m.Define("BSS", 0x0200, 0x10, Bss, program.Location{})
	m.Define("CODE", 0x8000, 0x10, Code, program.Location{})

	for _, name := range []string{"BSS", "CODE", "DATA"} {
		assert.True(t, m.SwitchTo(name, program.Location{}))
		assert.True(t, m.Emit(0xaa, program.Location{}))
	}

	output := m.OutputSegments()
	assert.Equal(t, 2, len(output))
	assert.Equal(t, uint32(0x8000), output[0].StartAddress)
	assert.Equal(t, []byte{0xaa}, output[0].Data)
	assert.Equal(t, uint32(0xC000), output[1].StartAddress)
}

func TestManagerOverflowScenario(t *testing.T) {
	m := New(log.NewTestLogger(t))
	m.Define("CODE", 0x8000, 0x8000, Code, program.Location{File: "game.asm", Line: 1})
	assert.True(t, m.SwitchTo("CODE", program.Location{}))

	firstFailure := -1
	for i := range 0x8010 {
		if !m.Emit(byte(i), program.Location{}) && firstFailure < 0 {
			firstFailure = i
		}
	}

	seg := m.Active()
	assert.Equal(t, 0x8000, firstFailure)
	assert.Equal(t, 0x8010, seg.CurrentOffset())
	assert.Equal(t, 0x8010, len(seg.Bytes()))
	assert.False(t, m.HasErrors())

	m.ValidateSegments()
	errs := m.Errors()
	assert.Equal(t, 1, len(errs))
	assert.Contains(t, errs[0].Message, "CODE")
	assert.Contains(t, errs[0].Message, "$8010")
	assert.Contains(t, errs[0].Message, "$8000")
	assert.Equal(t, "game.asm:1", errs[0].Location.String())
}

func TestCreateDefaultSegments(t *testing.T) {
	tests := []struct {
		target   arch.Target
		names    []string
		active   string
		hasBanks bool
	}{
		{arch.NES, []string{"ZEROPAGE", "RAM", "CODE"}, "CODE", false},
		{arch.SNES, []string{"ZEROPAGE", "RAM", "CODE"}, "CODE", false},
		{arch.GameBoy, []string{"ROM0", "ROMX", "VRAM", "WRAM", "HRAM"}, "ROM0", true},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			m := New(log.NewTestLogger(t))
			m.CreateDefaultSegments(tt.target)

			assert.False(t, m.HasErrors())
			assert.Equal(t, len(tt.names), m.Len())
			for _, name := range tt.names {
				_, ok := m.Get(name)
				assert.True(t, ok, name)
			}
			assert.Equal(t, tt.active, m.Active().Name())
			assert.Equal(t, 0, m.CurrentBank())

			if tt.hasBanks {
				romx, _ := m.Get("ROMX")
				assert.Equal(t, 1, romx.Bank())
			}
		})
	}

	t.Run("nes code segment", func(t *testing.T) {
		m := New(log.NewTestLogger(t))
		m.CreateDefaultSegments(arch.NES)
		code, _ := m.Get("code")
		assert.Equal(t, uint32(0x8000), code.StartAddress())
		assert.Equal(t, 0x8000, code.MaxSize())
		assert.Equal(t, Code, code.Type())
	})

	t.Run("keeps active segment", func(t *testing.T) {
		m := New(log.NewTestLogger(t))
		m.Define("MAIN", 0xC000, 0x100, Code, program.Location{})
		assert.True(t, m.SwitchTo("MAIN", program.Location{}))
		m.SwitchBank(4, program.Location{})

		m.CreateDefaultSegments(arch.GameBoy)
		assert.Equal(t, "MAIN", m.Active().Name())
		assert.Equal(t, 4, m.CurrentBank())
		rom0, _ := m.Get("ROM0")
		assert.Equal(t, 0, rom0.Bank())
	})

	t.Run("redefinition is reported", func(t *testing.T) {
		m := New(log.NewTestLogger(t))
		m.Define("CODE", 0xC000, 0x100, Code, program.Location{})
		m.CreateDefaultSegments(arch.NES)
		assert.Equal(t, 1, len(m.Errors()))
		code, _ := m.Get("CODE")
		assert.Equal(t, uint32(0xC000), code.StartAddress())
	})

	t.Run("unknown target", func(t *testing.T) {
		m := New(log.NewTestLogger(t))
		m.CreateDefaultSegments(arch.UnknownTarget)
		assert.Equal(t, 0, m.Len())
		assert.Nil(t, m.Active())
	})
}

func TestErrorString(t *testing.T) {
	err := Error{Message: "boom"}
	assert.Equal(t, "boom", err.Error())

	err.Location = program.Location{File: "a.asm", Line: 2, Column: 5}
	assert.Equal(t, "a.asm:2:5: boom", err.Error())
}
