package segment

import (
	"fmt"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

type defaultSegment struct {
	name  string
	start uint32
	size  int
	typ   Type
	bank  int
}

var defaultLayouts = map[arch.Target][]defaultSegment{
	arch.NES: {
		{name: "ZEROPAGE", start: 0x0000, size: 0x100, typ: ZeroPage},
		{name: "RAM", start: 0x0200, size: 0x600, typ: Ram},
		{name: "CODE", start: 0x8000, size: 0x8000, typ: Code},
	},
	arch.SNES: {
		{name: "ZEROPAGE", start: 0x0000, size: 0x100, typ: ZeroPage},
		{name: "RAM", start: 0x0100, size: 0x1F00, typ: Ram},
		{name: "CODE", start: 0x8000, size: 0x8000, typ: Code},
	},
	arch.GameBoy: {
		{name: "ROM0", start: 0x0000, size: 0x4000, typ: Rom},
		{name: "ROMX", start: 0x4000, size: 0x4000, typ: Rom, bank: 1},
		{name: "VRAM", start: 0x8000, size: 0x2000, typ: Ram},
		{name: "WRAM", start: 0xC000, size: 0x2000, typ: Ram},
		{name: "HRAM", start: 0xFF80, size: 0x7F, typ: Ram},
	},
}

// code segment that is activated after the defaults are created.
var defaultCodeSegment = map[arch.Target]string{
	arch.NES:     "CODE",
	arch.SNES:    "CODE",
	arch.GameBoy: "ROM0",
}

var defaultLocation = program.Location{File: "<default>"}

// CreateDefaultSegments defines the default memory layout of the target. A source
// program can redefine or extend the layout with segment directives. If no segment is
// active, the code segment of the layout is activated. The current bank is left unchanged.
func (m *Manager) CreateDefaultSegments(target arch.Target) {
	layout, ok := defaultLayouts[target]
	if !ok {
		m.logger.Debug("No default segments for target", log.String("target", target.String()))
		return
	}

	bank := m.bank
	for _, def := range layout {
		m.bank = def.bank
		m.Define(def.name, def.start, def.size, def.typ, defaultLocation)
	}
	m.bank = bank

	if m.active == nil {
		m.SwitchTo(defaultCodeSegment[target], defaultLocation)
	}
}

func hexAddress(address uint32) string {
	if address > 0xFFFF {
		return fmt.Sprintf("$%06X", address)
	}
	return fmt.Sprintf("$%04X", address)
}

func hexSize(size int) string {
	return fmt.Sprintf("$%04X", size)
}
