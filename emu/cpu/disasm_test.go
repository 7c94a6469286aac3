package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	table := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLRSCR"},
		{0x00EE, "RET"},
		{0x0123, "CALLM 0x123"},
		{0x1200, "JMP 0x200"},
		{0x2ABC, "CALL 0xabc"},
		{0x3A12, "JEQ VA 0x12"},
		{0x4B34, "JNE VB 0x34"},
		{0x5120, "JEQ V1 V2"},
		{0x5121, "INVALID 0x5121"},
		{0x6C07, "SET VC 0x07"},
		{0x7D01, "ADD VD 0x01"},
		{0x8120, "MOV V1 V2"},
		{0x8121, "OR V1 V2"},
		{0x8122, "AND V1 V2"},
		{0x8123, "XOR V1 V2"},
		{0x8124, "ADD V1 V2"},
		{0x8125, "SUB V1 V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBD V2 V1"},
		{0x812E, "SHL V1 V2"},
		{0x8128, "INVALID 0x8128"},
		{0x9340, "JNE V3 V4"},
		{0xA2F0, "SETI 0x2f0"},
		{0xB300, "JMP V0 0x300"},
		{0xC5FF, "RND V5 0xff"},
		{0xD12F, "DRAW V1 V2 0xf"},
		{0xE79E, "JKEY V7"},
		{0xE7A1, "JNKEY V7"},
		{0xE7A2, "INVALID 0xe7a2"},
		{0xF107, "GETDELAY V1"},
		{0xF10A, "GETKEY V1"},
		{0xF115, "SETDELAY V1"},
		{0xF118, "SETSOUND V1"},
		{0xF11E, "ADDI V1"},
		{0xF129, "SETI V1"},
		{0xF133, "BCD V1"},
		{0xF155, "STRMEM V1"},
		{0xF165, "LDMEM V1"},
		{0xF1FF, "INVALID 0xf1ff"},
	}

	for _, tt := range table {
		assert.Equal(t, tt.want, Disassemble(tt.word), "0x%04x", tt.word)
	}
}

func TestDecode(t *testing.T) {
	in := Decode(0xD12F)
	assert.Equal(t, OpDraw, in.Op)
	assert.Equal(t, uint8(1), in.X)
	assert.Equal(t, uint8(2), in.Y)
	assert.Equal(t, uint8(0xF), in.N)
	assert.Equal(t, uint8(0x2F), in.NN)
	assert.Equal(t, uint16(0x12F), in.NNN)

	assert.Equal(t, OpInvalid, Decode(0x01E0).Op)
	assert.Equal(t, "INVALID", Op(-1).String())
}

func TestDisassembleROM(t *testing.T) {
	lines := DisassembleROM([]byte{0x00, 0xE0, 0x12, 0x00, 0xA2})
	require.Len(t, lines, 3)
	assert.Equal(t, "0x0200  00e0  CLRSCR", lines[0].String())
	assert.Equal(t, "0x0202  1200  JMP 0x200", lines[1].String())
	assert.Equal(t, Line{Address: 0x204, Word: 0xA200, Text: "SETI 0x200"}, lines[2])
}
