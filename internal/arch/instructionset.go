package arch

import (
	"sort"

	"github.com/retroenv/retrogolib/set"
)

// InstructionSet resolves instructions of one CPU variant by consulting an ordered
// list of tables. The first table that defines a mnemonic and addressing mode pair
// wins, which lets the table of a derived variant override its base tables.
type InstructionSet struct {
	name     string
	tables   []*Table
	branches set.Set[string]
}

// NewInstructionSet returns an instruction set that consults the tables in the given
// order, the table of the most derived variant has to be passed first.
func NewInstructionSet(name string, branches []string, tables ...*Table) *InstructionSet {
	is := &InstructionSet{
		name:     name,
		tables:   tables,
		branches: set.New[string](),
	}
	for _, branch := range branches {
		is.branches.Add(canonical(branch))
	}
	return is
}

// TryEncode returns the encoding of the mnemonic in the given addressing mode.
func (is *InstructionSet) TryEncode(mnemonic string, mode AddressingMode) (Encoding, bool) {
	for _, table := range is.tables {
		if enc, ok := table.Lookup(mnemonic, mode); ok {
			return enc, true
		}
	}
	return Encoding{}, false
}

// AllMnemonics returns the mnemonics of all tables, deduplicated and sorted.
func (is *InstructionSet) AllMnemonics() []string {
	names := set.New[string]()
	for _, table := range is.tables {
		for _, name := range table.Mnemonics() {
			names.Add(name)
		}
	}

	result := make([]string, 0, len(names))
	for name := range names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// SupportedModes returns all addressing modes that any table defines for
// the mnemonic, deduplicated and in ascending order.
func (is *InstructionSet) SupportedModes(mnemonic string) []AddressingMode {
	modes := set.New[AddressingMode]()
	for _, table := range is.tables {
		for _, mode := range table.Modes(mnemonic) {
			modes.Add(mode)
		}
	}

	result := make([]AddressingMode, 0, len(modes))
	for mode := range modes {
		result = append(result, mode)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// IsBranchInstruction returns whether the mnemonic is one of the branch instructions
// of the CPU family.
func (is *InstructionSet) IsBranchInstruction(mnemonic string) bool {
	return is.branches.Contains(canonical(mnemonic))
}

// Name returns the name of the CPU variant.
func (is *InstructionSet) Name() string {
	return is.name
}

// Tables returns the tables in lookup order.
func (is *InstructionSet) Tables() []*Table {
	return is.tables
}
