// Package detector handles target system detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const layoutScriptExtension = ".star"

// Detector handles target detection from options and layout script names.
type Detector struct {
	logger *log.Logger
}

// New creates a new target detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the target from the options. If no target is specified,
// it is detected from the name of the layout script, for example game.sfc.star
// selects the SNES target.
func (d *Detector) Detect(opts options.Program) arch.Target {
	target, err := arch.TargetFromString(opts.Target)
	if err == nil {
		return target
	}

	target = detectFromFile(opts.Layout)
	d.logger.Debug("Auto-detected target",
		log.Stringer("target", target),
		log.String("file", opts.Layout))
	return target
}

// detectFromFile determines the target based on the ROM extension that precedes
// the layout script extension.
func detectFromFile(filename string) arch.Target {
	name := strings.ToLower(filepath.Base(filename))
	name = strings.TrimSuffix(name, layoutScriptExtension)

	switch filepath.Ext(name) {
	case ".sfc", ".smc":
		return arch.SNES
	case ".gb", ".gbc":
		return arch.GameBoy
	default:
		// Default to NES for unknown extensions
		return arch.NES
	}
}
