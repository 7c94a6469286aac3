// Package overlay turns a register snapshot into the text lines drawn next
// to the display.
package overlay

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu"
)

// Lines formats one register per line, padded to its width, followed by the
// current and next instruction.
func Lines(info emu.CPUInfo) []string {
	regs := info.Registers()
	lines := make([]string, 0, len(regs)+2)
	for _, r := range regs {
		lines = append(lines, fmt.Sprintf("%-2s %0*X", r.Name, r.Size.Digits(), r.Value))
	}
	return append(lines,
		"> "+info.CurrentInstruction(),
		"  "+info.NextInstruction(),
	)
}

// Status is the one line summary shown above the overlay.
func Status(running, waiting bool) string {
	switch {
	case waiting:
		return "waiting for key"
	case running:
		return "running"
	}
	return "paused"
}
