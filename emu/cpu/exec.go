package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/logger"
)

// VF is the flags register.
const VF = 0xF

// skipIf steps over the next instruction. PC has already moved past the
// current one.
func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 2
	}
}

// setFlag writes VF and then Vx so that Vx wins when x is F. The shifts
// don't use it: they write VF first and then shift what is in Vx.
func (emu *EMU) setFlag(x uint8, v uint8, flag bool) {
	if flag {
		emu.V[VF] = 1
	} else {
		emu.V[VF] = 0
	}
	emu.V[x] = v
}

func (emu *EMU) execute(in Instruction) error {
	x, y := in.X, in.Y
	vx, vy := emu.V[x], emu.V[y]

	switch in.Op {
	case OpCls:
		emu.display.Clear()
		emu.updateScreen = true
	case OpJump:
		emu.pc = in.NNN
	case OpSkipEqImm:
		emu.skipIf(vx == in.NN)
	case OpSkipNeImm:
		emu.skipIf(vx != in.NN)
	case OpSkipEqReg:
		emu.skipIf(vx == vy)
	case OpSkipNeReg:
		emu.skipIf(vx != vy)
	case OpSetImm:
		emu.V[x] = in.NN
	case OpAddImm:
		emu.V[x] = vx + in.NN
	case OpMove:
		emu.V[x] = vy
	case OpOr:
		emu.V[x] = vx | vy
	case OpAnd:
		emu.V[x] = vx & vy
	case OpXor:
		emu.V[x] = vx ^ vy
	case OpAdd:
		sum := uint16(vx) + uint16(vy)
		emu.setFlag(x, uint8(sum), sum > 0xFF)
	case OpSub:
		emu.setFlag(x, vx-vy, vx >= vy)
	case OpShr:
		// shifts Vx, Vy is ignored
		emu.V[VF] = vx & 0x01
		emu.V[x] >>= 1
	case OpSubN:
		emu.setFlag(x, vy-vx, vx <= vy)
	case OpShl:
		emu.V[VF] = vx >> 7
		emu.V[x] <<= 1
	case OpSetIndex:
		emu.I = in.NNN
	case OpJumpV0:
		emu.pc = uint16(emu.V[0]) + in.NNN
	case OpRand:
		emu.V[x] = uint8(emu.randIntn(int(in.NN) + 1))
	case OpDraw:
		return emu.draw(vx, vy, in.N)
	case OpSkipKey, OpSkipNoKey:
		if vx >= NumKeys {
			return fmt.Errorf("%w: V%X is %d", ErrKeyRange, x, vx)
		}
		pressed := emu.keyState.Pressed(int(vx))
		emu.skipIf(pressed == (in.Op == OpSkipKey))
	case OpGetDelay:
		emu.V[x] = emu.timers.delay
	case OpWaitKey:
		if key, ok := emu.keyState.FirstPressed(); ok {
			emu.V[x] = uint8(key) & 0x0F
		} else {
			emu.waitKey = true
		}
	case OpSetDelay:
		emu.timers.delay = vx
	case OpSetSound:
		emu.timers.sound = vx
	case OpAddIndex:
		emu.I += uint16(vx)
	case OpFont:
		emu.I = glyphAddress(vx)
	case OpBCD:
		return emu.bcd(vx)
	case OpStore:
		mem, err := emu.memory.Slice(emu.I, int(x)+1)
		if err != nil {
			return err
		}
		copy(mem, emu.V[:x+1])
	case OpLoad:
		mem, err := emu.memory.Slice(emu.I, int(x)+1)
		if err != nil {
			return err
		}
		copy(emu.V[:x+1], mem)
	default:
		logger.Logf("cpu", "unimplemented opcode 0x%04x (%s)", in.Word, Disassemble(in.Word))
	}

	return nil
}

func (emu *EMU) draw(x, y uint8, n uint8) error {
	rows, err := emu.memory.Slice(emu.I, int(n))
	if err != nil {
		return err
	}

	drawn, erased := emu.display.DrawSprite(x, y, rows)
	emu.updateScreen = true

	if emu.quirks.CollisionErase {
		if erased {
			emu.V[VF] = 1
		} else {
			emu.V[VF] = 0
		}
	} else if drawn {
		emu.V[VF] = 1
	}

	return nil
}

func (emu *EMU) bcd(v uint8) error {
	if emu.quirks.BCDStandard {
		mem, err := emu.memory.Slice(emu.I, 3)
		if err != nil {
			return err
		}
		mem[0] = v / 100
		mem[1] = (v / 10) % 10
		mem[2] = v % 10
		return nil
	}

	// least significant digit first, as many digits as v has
	var digits []uint8
	for d := v; d > 0; d /= 10 {
		digits = append(digits, d%10)
	}
	mem, err := emu.memory.Slice(emu.I, len(digits))
	if err != nil {
		return err
	}
	copy(mem, digits)

	emu.I = glyphAddress(v)
	return nil
}
