package cpu

// Op is the operation an instruction word decodes to.
type Op int

const (
	OpInvalid Op = iota
	OpCls        // 00E0
	OpJump       // 1nnn
	OpSkipEqImm  // 3xnn
	OpSkipNeImm  // 4xnn
	OpSkipEqReg  // 5xy0
	OpSetImm     // 6xnn
	OpAddImm     // 7xnn
	OpMove       // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAdd        // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubN       // 8xy7
	OpShl        // 8xyE
	OpSkipNeReg  // 9xy0
	OpSetIndex   // Annn
	OpJumpV0     // Bnnn
	OpRand       // Cxnn
	OpDraw       // Dxyn
	OpSkipKey    // Ex9E
	OpSkipNoKey  // ExA1
	OpGetDelay   // Fx07
	OpWaitKey    // Fx0A
	OpSetDelay   // Fx15
	OpSetSound   // Fx18
	OpAddIndex   // Fx1E
	OpFont       // Fx29
	OpBCD        // Fx33
	OpStore      // Fx55
	OpLoad       // Fx65

	numOps
)

var opNames = [numOps]string{
	"INVALID", "CLRSCR", "JMP", "JEQ", "JNE", "JEQ", "SET", "ADD",
	"MOV", "OR", "AND", "XOR", "ADD", "SUB", "SHR", "SUBD", "SHL", "JNE",
	"SETI", "JMP", "RND", "DRAW", "JKEY", "JNKEY",
	"GETDELAY", "GETKEY", "SETDELAY", "SETSOUND", "ADDI", "SETI", "BCD",
	"STRMEM", "LDMEM",
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return opNames[OpInvalid]
	}
	return opNames[op]
}

type Instruction struct {
	Op   Op
	Word uint16

	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // last nibble
	NN  uint8  // low byte
	NNN uint16 // low 12 bits, address
}

// Decode splits word into its fields and classifies it. Words outside the
// instruction table decode to OpInvalid.
func Decode(word uint16) Instruction {
	in := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	in.Op = classify(word, in.N, in.NN)
	return in
}

func classify(word uint16, n uint8, nn uint8) Op {
	switch word >> 12 {
	case 0x0:
		// 00E0 is the only 0 family word that the interpreter runs. 00EE
		// and 0nnn are disassembled but not executed.
		if word == 0x00E0 {
			return OpCls
		}
	case 0x1:
		return OpJump
	case 0x3:
		return OpSkipEqImm
	case 0x4:
		return OpSkipNeImm
	case 0x5:
		if n == 0 {
			return OpSkipEqReg
		}
	case 0x6:
		return OpSetImm
	case 0x7:
		return OpAddImm
	case 0x8:
		switch n {
		case 0x0:
			return OpMove
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAdd
		case 0x5:
			return OpSub
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubN
		case 0xE:
			return OpShl
		}
	case 0x9:
		if n == 0 {
			return OpSkipNeReg
		}
	case 0xA:
		return OpSetIndex
	case 0xB:
		return OpJumpV0
	case 0xC:
		return OpRand
	case 0xD:
		return OpDraw
	case 0xE:
		switch nn {
		case 0x9E:
			return OpSkipKey
		case 0xA1:
			return OpSkipNoKey
		}
	case 0xF:
		switch nn {
		case 0x07:
			return OpGetDelay
		case 0x0A:
			return OpWaitKey
		case 0x15:
			return OpSetDelay
		case 0x18:
			return OpSetSound
		case 0x1E:
			return OpAddIndex
		case 0x29:
			return OpFont
		case 0x33:
			return OpBCD
		case 0x55:
			return OpStore
		case 0x65:
			return OpLoad
		}
	}
	return OpInvalid
}
