// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/arch/m6502"
	"github.com/retroenv/retroasm/internal/arch/sm83"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateInstructionSet creates the instruction set for the given CPU variant.
func CreateInstructionSet(cpu arch.CPU) (*arch.InstructionSet, error) {
	switch cpu {
	case arch.NMOS6502, arch.NMOS6502X, arch.CMOS65C02, arch.WDC65816:
		is, err := m6502.NewInstructionSet(cpu)
		if err != nil {
			return nil, fmt.Errorf("creating 6502 instruction set: %w", err)
		}
		return is, nil
	case arch.SM83:
		return sm83.NewInstructionSet(), nil
	default:
		return nil, fmt.Errorf("%w: %s", arch.ErrUnknownTarget, cpu)
	}
}
