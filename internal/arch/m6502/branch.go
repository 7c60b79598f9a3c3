package m6502

import (
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// complementaryBranches defines pairs of branch instructions that test opposite conditions of the same flag.
var complementaryBranches = map[string]string{
	m6502.Beq.Name: m6502.Bne.Name, // Zero flag: equal vs not equal
	m6502.Bne.Name: m6502.Beq.Name,
	m6502.Bcc.Name: m6502.Bcs.Name, // Carry flag: clear vs set
	m6502.Bcs.Name: m6502.Bcc.Name,
	m6502.Bpl.Name: m6502.Bmi.Name, // Negative flag: plus vs minus
	m6502.Bmi.Name: m6502.Bpl.Name,
	m6502.Bvc.Name: m6502.Bvs.Name, // Overflow flag: clear vs set
	m6502.Bvs.Name: m6502.Bvc.Name,
}

func nmosBranches() []string {
	branches := make([]string, 0, len(complementaryBranches))
	for name := range complementaryBranches {
		branches = append(branches, name)
	}
	return branches
}

func cmosBranches() []string {
	return append(nmosBranches(), "BRA")
}

func wdc65816Branches() []string {
	return append(cmosBranches(), "BRL")
}

// InvertBranch returns the conditional branch that tests the opposite condition of the
// given branch. A code generator uses it to replace a conditional branch that is out of
// range by the inverted branch over an absolute jump.
func InvertBranch(mnemonic string) (string, bool) {
	for branch, inverted := range complementaryBranches {
		if strings.EqualFold(branch, mnemonic) {
			return strings.ToUpper(inverted), true
		}
	}
	return "", false
}
