package detector

import (
	"testing"

	"github.com/retroenv/retroasm/internal/arch"
	"github.com/retroenv/retroasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		targetOpt  string
		layout     string
		wantTarget arch.Target
	}{
		{
			name:       "explicit target option",
			targetOpt:  "snes",
			layout:     "game.gb.star",
			wantTarget: arch.SNES,
		},
		{
			name:       "explicit target alias",
			targetOpt:  "gameboy",
			layout:     "",
			wantTarget: arch.GameBoy,
		},
		{
			name:       "detect from .nes extension",
			layout:     "game.nes.star",
			wantTarget: arch.NES,
		},
		{
			name:       "detect from .sfc extension",
			layout:     "layouts/Game.SFC.star",
			wantTarget: arch.SNES,
		},
		{
			name:       "detect from .smc extension",
			layout:     "game.smc.star",
			wantTarget: arch.SNES,
		},
		{
			name:       "detect from .gbc extension",
			layout:     "game.gbc.star",
			wantTarget: arch.GameBoy,
		},
		{
			name:       "default for plain script",
			layout:     "layout.star",
			wantTarget: arch.NES,
		},
		{
			name:       "default without script",
			wantTarget: arch.NES,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Layout: tt.layout},
				Flags:      options.Flags{Target: tt.targetOpt},
			}
			assert.Equal(t, tt.wantTarget, d.Detect(opts))
		})
	}
}
