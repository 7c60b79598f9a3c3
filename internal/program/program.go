// Package program contains the results of a compilation that the back end consumes:
// the finished output segments, the resolved symbols and the instruction listing.
package program

// OutputSegment is a finished block of output bytes placed at a CPU visible start address.
type OutputSegment struct {
	StartAddress uint32
	Data         []byte
}

// EndAddress returns the address following the last byte of the segment.
func (s OutputSegment) EndAddress() uint32 {
	return s.StartAddress + uint32(len(s.Data))
}

// ListingEntry describes one generated instruction of the instruction listing.
type ListingEntry struct {
	Address uint32
	Bytes   []byte // opcode and operand bytes
}

// Size returns the encoded length of the instruction.
func (e ListingEntry) Size() int {
	return len(e.Bytes)
}
