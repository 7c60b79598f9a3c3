package program

import "math"

// SymbolKind defines the kind of a symbol.
type SymbolKind uint8

// symbol kinds.
const (
	Label SymbolKind = iota
	Constant
	Variable
	Macro
)

var symbolKindNames = [...]string{
	Label:    "label",
	Constant: "constant",
	Variable: "variable",
	Macro:    "macro",
}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return "unknown"
}

// Symbol is an entry of the resolved symbol table.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Value    int64
	Resolved bool // Value is set
	Defined  bool
}

// IsLabel returns whether the symbol names a code or data location.
func (s Symbol) IsLabel() bool {
	return s.Kind == Label
}

// Address returns the value of the symbol as address. It returns false if the symbol
// is not defined, not resolved or its value is not a valid address.
func (s Symbol) Address() (uint32, bool) {
	if !s.Defined || !s.Resolved {
		return 0, false
	}
	if s.Value < 0 || s.Value > math.MaxUint32 {
		return 0, false
	}
	return uint32(s.Value), true
}
