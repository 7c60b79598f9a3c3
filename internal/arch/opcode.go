package arch

import (
	"slices"
	"sort"
	"strings"
)

// Encoding is the result of resolving a mnemonic and addressing mode for a CPU variant.
type Encoding struct {
	Opcode byte
	Size   int // instruction size in bytes including the opcode
}

type tableKey struct {
	mnemonic string
	mode     AddressingMode
}

// Table maps a mnemonic and addressing mode pair to its encoding.
// A table of a derived CPU variant only contains the entries that the variant adds
// or changes, base entries are found by an InstructionSet that chains the tables.
type Table struct {
	name    string
	entries map[tableKey]Encoding
	modes   map[string][]AddressingMode
}

// NewTable returns a new table for the given entries, mnemonics are canonicalized
// to upper case.
func NewTable(name string, entries map[string]map[AddressingMode]Encoding) *Table {
	t := &Table{
		name:    name,
		entries: make(map[tableKey]Encoding),
		modes:   make(map[string][]AddressingMode),
	}
	for mnemonic, modes := range entries {
		for mode, enc := range modes {
			t.Add(mnemonic, mode, enc)
		}
	}
	return t
}

// Add sets the encoding for a mnemonic and addressing mode, replacing an existing entry.
func (t *Table) Add(mnemonic string, mode AddressingMode, enc Encoding) {
	key := tableKey{mnemonic: canonical(mnemonic), mode: mode}
	if _, ok := t.entries[key]; !ok {
		t.modes[key.mnemonic] = append(t.modes[key.mnemonic], mode)
	}
	t.entries[key] = enc
}

// Lookup returns the encoding for the mnemonic and addressing mode if this table defines it.
func (t *Table) Lookup(mnemonic string, mode AddressingMode) (Encoding, bool) {
	enc, ok := t.entries[tableKey{mnemonic: canonical(mnemonic), mode: mode}]
	return enc, ok
}

// Has returns whether the table defines any addressing mode for the mnemonic.
func (t *Table) Has(mnemonic string) bool {
	_, ok := t.modes[canonical(mnemonic)]
	return ok
}

// Mnemonics returns all mnemonics of this table in sorted order.
func (t *Table) Mnemonics() []string {
	names := make([]string, 0, len(t.modes))
	for name := range t.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modes returns the addressing modes that this table defines for the mnemonic.
func (t *Table) Modes(mnemonic string) []AddressingMode {
	return slices.Clone(t.modes[canonical(mnemonic)])
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of mnemonic and addressing mode pairs of the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func canonical(mnemonic string) string {
	return strings.ToUpper(strings.TrimSpace(mnemonic))
}
