// Package cdl generates code/data logs that classify every byte of an output file
// for emulators and debuggers.
package cdl

import (
	"slices"
	"strings"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/program"
	"github.com/retroenv/retroasm/internal/symbols"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// subroutinePrefixes mark labels as subroutine entry points, matched case-insensitively.
var subroutinePrefixes = []string{"sub_", "func_", "proc_", "fn_"}

// Input contains the results of a finished compilation.
type Input struct {
	Target   arch.Target
	Segments []program.OutputSegment
	Symbols  *symbols.Table
	Listing  []program.ListingEntry // optional
}

// Generator collects the call and jump targets of the code generation and
// generates the code/data log from the compilation result.
type Generator struct {
	logger *log.Logger

	subroutineEntries set.Set[uint32]
	jumpTargets       set.Set[uint32]
}

// New creates a new generator.
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Generator{
		logger:            logger,
		subroutineEntries: set.New[uint32](),
		jumpTargets:       set.New[uint32](),
	}
}

// RegisterSubroutineEntry marks the address as target of a call instruction.
func (g *Generator) RegisterSubroutineEntry(address uint32) {
	g.subroutineEntries.Add(address)
}

// RegisterJumpTarget marks the address as target of a jump or branch instruction.
func (g *Generator) RegisterJumpTarget(address uint32) {
	g.jumpTargets.Add(address)
}

// SubroutineEntries returns all registered call targets in ascending order.
func (g *Generator) SubroutineEntries() []uint32 {
	return sortedAddresses(g.subroutineEntries)
}

// JumpTargets returns all registered jump targets in ascending order.
func (g *Generator) JumpTargets() []uint32 {
	return sortedAddresses(g.jumpTargets)
}

// Reset removes all registered targets.
func (g *Generator) Reset() {
	g.subroutineEntries = set.New[uint32]()
	g.jumpTargets = set.New[uint32]()
}

// Generate returns the serialized code/data log for an output file of the given size.
// Every address is mapped to its file offset, addresses that are not part of the
// output file are skipped. Flags are only ever added to a byte.
func (g *Generator) Generate(input Input, outputSize int, format Format) []byte {
	if outputSize < 0 {
		outputSize = 0
	}
	if format == FormatAuto {
		format = FormatMesen
	}

	c := classification{
		target: input.Target,
		data:   make([]byte, outputSize),
	}
	flags := format.flags()

	for _, seg := range input.Segments {
		for i := range seg.Data {
			c.mark(seg.StartAddress+uint32(i), flags.code)
		}
	}

	for _, sym := range input.Symbols.All() {
		address, ok := sym.Address()
		if !ok || !sym.IsLabel() {
			continue
		}
		if hasSubroutinePrefix(sym.Name) {
			c.mark(address, flags.labelEntry)
		}
		c.mark(address, flags.jumpTarget)
	}

	for address := range g.subroutineEntries {
		c.mark(address, flags.subEntryPoint)
	}
	for address := range g.jumpTargets {
		c.mark(address, flags.jumpTarget)
	}

	for _, entry := range input.Listing {
		for i := range entry.Size() {
			c.mark(entry.Address+uint32(i), flags.code)
		}
	}

	g.logger.Debug("Generated code/data log",
		log.String("format", format.String()),
		log.String("target", input.Target.String()),
		log.Int("size", outputSize),
		log.Int("codeBytes", c.count(flags.code)),
		log.Int("subroutineEntries", len(g.subroutineEntries)),
		log.Int("jumpTargets", len(g.jumpTargets)))

	if format != FormatMesen {
		return c.data
	}

	result := make([]byte, 0, HeaderSize+outputSize)
	result = append(result, Signature...)
	result = append(result, Version)
	return append(result, c.data...)
}

type classification struct {
	target arch.Target
	data   []byte
}

// mark sets the flag at the file offset of the address.
func (c *classification) mark(address uint32, flag byte) {
	if flag == 0 {
		return
	}
	offset, ok := arch.FileOffset(c.target, address)
	if !ok || offset < 0 || offset >= len(c.data) {
		return
	}
	c.data[offset] |= flag
}

func (c *classification) count(flag byte) int {
	var n int
	for _, b := range c.data {
		if b&flag != 0 {
			n++
		}
	}
	return n
}

func hasSubroutinePrefix(name string) bool {
	name = strings.ToLower(name)
	for _, prefix := range subroutinePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func sortedAddresses(addresses set.Set[uint32]) []uint32 {
	result := make([]uint32, 0, len(addresses))
	for address := range addresses {
		result = append(result, address)
	}
	slices.Sort(result)
	return result
}
