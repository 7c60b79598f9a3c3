package m6502

import (
	"testing"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retrogolib/assert"
)

func TestIsBranchInstruction(t *testing.T) {
	tests := []struct {
		name     string
		cpu      arch.CPU
		mnemonic string
		expected bool
	}{
		{"BNE on 6502", arch.NMOS6502, "BNE", true},
		{"lower case beq", arch.NMOS6502, "beq", true},
		{"BVS on 6502X", arch.NMOS6502X, "bvs", true},
		{"JMP is no branch", arch.NMOS6502, "JMP", false},
		{"JSR is no branch", arch.NMOS6502, "jsr", false},
		{"BRA on 6502", arch.NMOS6502, "BRA", false},
		{"BRA on 65C02", arch.CMOS65C02, "bra", true},
		{"BRL on 65C02", arch.CMOS65C02, "BRL", false},
		{"BRL on 65816", arch.WDC65816, "brl", true},
		{"BCC on 65816", arch.WDC65816, "BCC", true},
		{"unknown mnemonic", arch.WDC65816, "XYZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, err := NewInstructionSet(tt.cpu)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, is.IsBranchInstruction(tt.mnemonic))
		})
	}
}

func TestInvertBranch(t *testing.T) {
	tests := []struct {
		mnemonic string
		expected string
	}{
		{"BNE", "BEQ"},
		{"beq", "BNE"},
		{"BCC", "BCS"},
		{"BCS", "BCC"},
		{"BPL", "BMI"},
		{"BMI", "BPL"},
		{"BVC", "BVS"},
		{"bvs", "BVC"},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			inverted, ok := InvertBranch(tt.mnemonic)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, inverted)
		})
	}

	_, ok := InvertBranch("BRA")
	assert.False(t, ok)
}
