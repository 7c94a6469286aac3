package overlay

import (
	"testing"

	"github.com/beanboi7/chyp8/emu"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInfo struct{}

func (fakeInfo) Registers() []emu.RegisterInfo {
	return []emu.RegisterInfo{
		{Name: "V0", Size: emu.RegSize8, Value: 0x0A},
		{Name: "PC", Size: emu.RegSize16, Value: 0x200},
		{Name: "R", Size: emu.RegSize32, Value: 1},
	}
}

func (fakeInfo) CurrentInstruction() string { return "CLRSCR" }
func (fakeInfo) NextInstruction() string    { return "JMP 0x200" }

func TestLines(t *testing.T) {
	assert.Equal(t, []string{
		"V0 0A",
		"PC 0200",
		"R  00000001",
		"> CLRSCR",
		"  JMP 0x200",
	}, Lines(fakeInfo{}))
}

func TestLinesFromEMU(t *testing.T) {
	vm := cpu.NewEMU()
	require.NoError(t, vm.LoadProgram([]byte{0x6A, 0xFF, 0x00, 0xE0}))
	require.NoError(t, vm.Tick())

	lines := Lines(vm)
	require.Len(t, lines, 22)
	assert.Equal(t, "VA FF", lines[0xA])
	assert.Equal(t, "PC 0202", lines[16])
	assert.Equal(t, "I  0000", lines[17])
	assert.Equal(t, "> SET VA 0xff", lines[20])
	assert.Equal(t, "  CLRSCR", lines[21])
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "running", Status(true, false))
	assert.Equal(t, "paused", Status(false, false))
	assert.Equal(t, "waiting for key", Status(true, true))
}
