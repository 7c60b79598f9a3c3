// Package segment models the address space of a target as named, bank aware segments
// that track where the next generated byte is placed.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retroasm/internal/program"
)

// ErrUnknownType is returned for segment type names that are not supported.
var ErrUnknownType = errors.New("unknown segment type")

// Type defines the type of a segment, it determines whether written bytes are stored.
type Type uint8

// segment types.
const (
	Code Type = iota
	Data
	Bss // reserves address space without storing bytes
	ZeroPage
	Rom
	Ram
)

var typeNames = [...]string{
	Code:     "code",
	Data:     "data",
	Bss:      "bss",
	ZeroPage: "zeropage",
	Rom:      "rom",
	Ram:      "ram",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// TypeFromString returns the segment type for the given case-insensitive name.
func TypeFromString(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "zp" {
		return ZeroPage, nil
	}
	for typ, typeName := range typeNames {
		if typeName == name {
			return Type(typ), nil
		}
	}
	return Code, fmt.Errorf("%w '%s'", ErrUnknownType, name)
}

// Segment is a named memory region with a write cursor.
type Segment struct {
	name     string
	start    uint32
	maxSize  int
	typ      Type
	bank     int
	location program.Location

	data   []byte
	offset int
}

func newSegment(name string, start uint32, maxSize int, typ Type, bank int, location program.Location) *Segment {
	return &Segment{
		name:     name,
		start:    start,
		maxSize:  maxSize,
		typ:      typ,
		bank:     bank,
		location: location,
	}
}

// Name returns the name of the segment as it was defined.
func (s *Segment) Name() string { return s.name }

// StartAddress returns the CPU visible address of the first byte of the segment.
func (s *Segment) StartAddress() uint32 { return s.start }

// MaxSize returns the declared capacity of the segment in bytes.
func (s *Segment) MaxSize() int { return s.maxSize }

// Type returns the type of the segment.
func (s *Segment) Type() Type { return s.typ }

// Bank returns the bank that the segment was defined in.
func (s *Segment) Bank() int { return s.bank }

// Location returns the source location of the segment definition.
func (s *Segment) Location() program.Location { return s.location }

// Bytes returns the bytes written to the segment, it is always empty for BSS segments.
func (s *Segment) Bytes() []byte { return s.data }

// CurrentOffset returns the offset of the write cursor relative to the segment start.
func (s *Segment) CurrentOffset() int { return s.offset }

// CurrentAddress returns the address that the next byte is written to.
func (s *Segment) CurrentAddress() uint32 {
	return s.start + uint32(s.offset)
}

// RemainingSpace returns the number of bytes that can be written before the segment
// overflows, it is negative for an overflowed segment.
func (s *Segment) RemainingSpace() int {
	return s.maxSize - s.offset
}

// HasOverflowed returns whether the write cursor is past the declared capacity.
func (s *Segment) HasOverflowed() bool {
	return s.offset > s.maxSize
}

// Emit writes a byte at the cursor position and advances the cursor. BSS segments only
// advance the cursor. The byte is written even if the segment overflows, false is
// returned in that case.
func (s *Segment) Emit(value byte) bool {
	if s.isMaterialized() {
		s.data = append(s.data, value)
	}
	s.offset++
	return !s.HasOverflowed()
}

// EmitBytes writes all given bytes with the semantics of Emit.
func (s *Segment) EmitBytes(data []byte) bool {
	ok := true
	for _, b := range data {
		if !s.Emit(b) {
			ok = false
		}
	}
	return ok
}

// Reserve advances the cursor by count bytes without writing data. Materialized
// segments pad the reserved space with zero bytes to keep the buffer length equal
// to the cursor offset.
func (s *Segment) Reserve(count int) bool {
	if count <= 0 {
		return !s.HasOverflowed()
	}
	if s.isMaterialized() {
		s.data = append(s.data, make([]byte, count)...)
	}
	s.offset += count
	return !s.HasOverflowed()
}

// Fill writes count copies of value, BSS segments only reserve the space.
func (s *Segment) Fill(count int, value byte) bool {
	if !s.isMaterialized() {
		return s.Reserve(count)
	}
	for range count {
		s.data = append(s.data, value)
	}
	if count > 0 {
		s.offset += count
	}
	return !s.HasOverflowed()
}

// isMaterialized returns whether the segment stores its bytes.
func (s *Segment) isMaterialized() bool {
	return s.typ != Bss
}
