// Package emu defines what a virtual machine backend has to offer the host
// loop: program loading, run control, one step per frame, a framebuffer the
// host can upscale and a key matrix the host can drive.
package emu

// Resolution is a width and height in pixels.
type Resolution struct {
	Width  int
	Height int
}

// RegisterSize is the width of a register in bits.
type RegisterSize int

const (
	RegSize8  RegisterSize = 8
	RegSize16 RegisterSize = 16
	RegSize32 RegisterSize = 32
	RegSize64 RegisterSize = 64
)

// Digits is the number of hex digits needed to print a register of this size.
func (s RegisterSize) Digits() int {
	return int(s) / 4
}

// RegisterInfo is one entry of a register snapshot.
type RegisterInfo struct {
	Name  string
	Size  RegisterSize
	Value uint64
}

// Emulator is implemented by every virtual machine the host loop can drive.
type Emulator interface {
	LoadProgram(rom []byte) error
	Start()
	Stop()
	Pause()
	Resume()
	Running() bool

	// Tick advances the machine by one frame: timers and at most one
	// instruction.
	Tick() error

	Resolution() Resolution
	DebugResolution() Resolution

	// RenderFrame upscales the framebuffer into buf, 4 bytes per pixel,
	// writing the colour channels only.
	RenderFrame(buf []byte, target Resolution) error

	PressKey(key int)
	ReleaseKey(key int)
}

// CPUInfo is the introspection side of an Emulator, used by debug overlays.
type CPUInfo interface {
	Registers() []RegisterInfo
	CurrentInstruction() string
	NextInstruction() string
}
