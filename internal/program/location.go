package program

import (
	"fmt"
	"strings"
)

// Location is a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location formatted as file:line:column, empty parts are left out.
func (l Location) String() string {
	var parts []string
	if l.File != "" {
		parts = append(parts, l.File)
	}
	if l.Line > 0 {
		parts = append(parts, fmt.Sprintf("%d", l.Line))
		if l.Column > 0 {
			parts = append(parts, fmt.Sprintf("%d", l.Column))
		}
	}
	if len(parts) == 0 {
		return "<unknown>"
	}
	return strings.Join(parts, ":")
}

// IsZero returns whether the location is unset.
func (l Location) IsZero() bool {
	return l == Location{}
}
