// Package symbols provides the resolved symbol table of a compilation.
package symbols

import (
	"sort"
	"strings"

	"github.com/retroenv/retroasm/internal/program"
)

// Table contains symbols indexed by their case-insensitive name.
type Table struct {
	items map[string]program.Symbol
}

// New creates a new symbol table.
func New() *Table {
	return &Table{
		items: make(map[string]program.Symbol),
	}
}

// FromSymbols creates a new symbol table containing the given symbols.
func FromSymbols(symbols ...program.Symbol) *Table {
	t := New()
	for _, sym := range symbols {
		t.Add(sym)
	}
	return t
}

// Add adds a symbol to the table. The first symbol of a name is kept,
// false is returned if the name already exists.
func (t *Table) Add(sym program.Symbol) bool {
	key := strings.ToLower(sym.Name)
	if _, ok := t.items[key]; ok {
		return false
	}
	t.items[key] = sym
	return true
}

// Get returns the symbol of the given name.
func (t *Table) Get(name string) (program.Symbol, bool) {
	sym, ok := t.items[strings.ToLower(name)]
	return sym, ok
}

// Has returns whether a symbol of the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.items[strings.ToLower(name)]
	return ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// All returns all symbols sorted by name.
func (t *Table) All() []program.Symbol {
	if t == nil {
		return nil
	}
	items := make([]program.Symbol, 0, len(t.items))
	for _, sym := range t.items {
		items = append(items, sym)
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items
}

// SortedByAddress returns all symbols that resolve to an address, sorted by address
// and name.
func (t *Table) SortedByAddress() []program.Symbol {
	all := t.All()
	items := all[:0]
	for _, sym := range all {
		if _, ok := sym.Address(); ok {
			items = append(items, sym)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value < items[j].Value
	})
	return items
}
