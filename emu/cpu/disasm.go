package cpu

import "fmt"

// Disassemble renders an instruction word as a mnemonic. It covers a few
// words the interpreter does not run (00EE, 0nnn, 2nnn) so listings of real
// programs read naturally.
func Disassemble(word uint16) string {
	in := Decode(word)

	switch in.Op {
	case OpInvalid:
		switch {
		case word == 0x00EE:
			return "RET"
		case word&0xF000 == 0x0000:
			return fmt.Sprintf("CALLM 0x%03x", in.NNN)
		case word&0xF000 == 0x2000:
			return fmt.Sprintf("CALL 0x%03x", in.NNN)
		}
		return fmt.Sprintf("INVALID 0x%04x", word)
	case OpCls:
		return in.Op.String()
	case OpJump, OpSetIndex:
		return fmt.Sprintf("%s 0x%03x", in.Op, in.NNN)
	case OpJumpV0:
		return fmt.Sprintf("%s V0 0x%03x", in.Op, in.NNN)
	case OpSkipEqImm, OpSkipNeImm, OpSetImm, OpAddImm, OpRand:
		return fmt.Sprintf("%s V%X 0x%02x", in.Op, in.X, in.NN)
	case OpSkipEqReg, OpSkipNeReg, OpMove, OpOr, OpAnd, OpXor, OpAdd, OpSub, OpShl:
		return fmt.Sprintf("%s V%X V%X", in.Op, in.X, in.Y)
	case OpSubN:
		// written subtrahend last
		return fmt.Sprintf("%s V%X V%X", in.Op, in.Y, in.X)
	case OpDraw:
		return fmt.Sprintf("%s V%X V%X 0x%x", in.Op, in.X, in.Y, in.N)
	}

	return fmt.Sprintf("%s V%X", in.Op, in.X)
}

type Line struct {
	Address uint16
	Word    uint16
	Text    string
}

func (l Line) String() string {
	return fmt.Sprintf("0x%04x  %04x  %s", l.Address, l.Word, l.Text)
}

// DisassembleROM lists every word of rom as it would sit in memory. An odd
// trailing byte is padded with zero.
func DisassembleROM(rom []byte) []Line {
	lines := make([]Line, 0, (len(rom)+1)/2)
	for i := 0; i < len(rom); i += 2 {
		word := uint16(rom[i]) << 8
		if i+1 < len(rom) {
			word |= uint16(rom[i+1])
		}
		lines = append(lines, Line{
			Address: uint16(ProgramStart + i),
			Word:    word,
			Text:    Disassemble(word),
		})
	}
	return lines
}
