// Package arch contains types and functions used for multi architecture support.
// It acts as a bridge between the code generator and the CPU specific instruction tables.
package arch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is returned when a target or CPU name can not be resolved.
var ErrUnknownTarget = errors.New("unknown target")

// Target selects the system that the output file is generated for.
type Target uint8

// supported targets.
const (
	UnknownTarget Target = iota
	NES                  // 6502 compatible system with an iNES file header
	SNES                 // 65816 based system using LoROM mapping
	GameBoy              // SM83 based handheld system
)

var targetNames = map[Target]string{
	UnknownTarget: "unknown",
	NES:           "nes",
	SNES:          "snes",
	GameBoy:       "gb",
}

var targetAliases = map[string]Target{
	"nes":     NES,
	"6502":    NES,
	"snes":    SNES,
	"65816":   SNES,
	"gb":      GameBoy,
	"gameboy": GameBoy,
}

// String returns the name of the target.
func (t Target) String() string {
	name, ok := targetNames[t]
	if !ok {
		return fmt.Sprintf("target(%d)", uint8(t))
	}
	return name
}

// CPU returns the CPU variant that the target uses.
func (t Target) CPU() CPU {
	switch t {
	case SNES:
		return WDC65816
	case GameBoy:
		return SM83
	default:
		return NMOS6502
	}
}

// TargetFromString returns the target for the given name, the name is matched case-insensitively.
func TargetFromString(name string) (Target, error) {
	target, ok := targetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return UnknownTarget, fmt.Errorf("%w '%s'", ErrUnknownTarget, name)
	}
	return target, nil
}

// CPU selects the instruction set variant used for encoding.
type CPU uint8

// supported CPU variants.
const (
	NMOS6502  CPU = iota // original 6502 and the NES 2A03
	NMOS6502X            // 6502 including unofficial opcodes
	CMOS65C02            // 65C02 enhanced variant
	WDC65816             // 16-bit extended variant
	SM83                 // Game Boy CPU
)

var cpuNames = map[CPU]string{
	NMOS6502:  "6502",
	NMOS6502X: "6502x",
	CMOS65C02: "65c02",
	WDC65816:  "65816",
	SM83:      "sm83",
}

// String returns the name of the CPU variant.
func (c CPU) String() string {
	name, ok := cpuNames[c]
	if !ok {
		return fmt.Sprintf("cpu(%d)", uint8(c))
	}
	return name
}

// CPUFromString returns the CPU variant for the given name, the name is matched case-insensitively.
func CPUFromString(name string) (CPU, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cpu, cpuName := range cpuNames {
		if cpuName == name {
			return cpu, nil
		}
	}
	return NMOS6502, fmt.Errorf("%w cpu '%s'", ErrUnknownTarget, name)
}
