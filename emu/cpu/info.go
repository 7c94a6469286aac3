package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu"
)

// side panel for the debug overlay: 8 pixel characters, one row per
// register plus PC, I and the two timers
var debugResolution = emu.Resolution{Width: 64, Height: 184}

func (emu *EMU) DebugResolution() emu.Resolution {
	return debugResolution
}

// Registers returns V0 to VF, PC, I and the two timers.
func (emu *EMU) Registers() []emu.RegisterInfo {
	return snapshot(&emu.V, emu.pc, emu.I, &emu.timers)
}

func snapshot(v *[16]uint8, pc uint16, index uint16, t *timers) []emu.RegisterInfo {
	regs := make([]emu.RegisterInfo, 0, len(v)+4)
	for i, r := range v {
		regs = append(regs, reg8(fmt.Sprintf("V%X", i), r))
	}
	return append(regs,
		reg16("PC", pc),
		reg16("I", index),
		reg8("DT", t.delay),
		reg8("ST", t.sound),
	)
}

func reg8(name string, v uint8) emu.RegisterInfo {
	return emu.RegisterInfo{Name: name, Size: emu.RegSize8, Value: uint64(v)}
}

func reg16(name string, v uint16) emu.RegisterInfo {
	return emu.RegisterInfo{Name: name, Size: emu.RegSize16, Value: uint64(v)}
}

func (emu *EMU) CurrentInstruction() string {
	return Disassemble(emu.opcode)
}

func (emu *EMU) NextInstruction() string {
	word, err := emu.memory.ReadWord(emu.pc)
	if err != nil {
		return fmt.Sprintf("INVALID pc 0x%04x", emu.pc)
	}
	return Disassemble(word)
}
