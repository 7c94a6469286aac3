package cpu

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beanboi7/chyp8/emu"
)

// Quirks switch between the interpreter's historical behaviour and the
// common reading of the instruction set. The zero value is the historical
// behaviour.
type Quirks struct {
	// BCDStandard makes Fx33 write hundreds, tens and ones at I, I+1 and
	// I+2 and leave I unchanged. Otherwise digits are written least
	// significant first, only as many as the value has, and I is pointed
	// at the font glyph for Vx.
	BCDStandard bool

	// CollisionErase makes Dxyn set VF to 1 only when a pixel is turned
	// off and to 0 otherwise. Otherwise VF is set to 1 when any bit of the
	// sprite is set and left alone when none is.
	CollisionErase bool
}

type EMU struct {
	opcode   uint16
	memory   Memory
	V        [16]uint8
	I        uint16 //address register
	pc       uint16
	display  Display
	timers   timers
	keyState Keypad

	running      bool
	waitKey      bool // Fx0A is blocking
	updateScreen bool // display changed since last ScreenChanged()

	quirks    Quirks
	timerMode TimerMode
	randIntn  func(n int) int
}

var _ emu.Emulator = (*EMU)(nil)
var _ emu.CPUInfo = (*EMU)(nil)

type Option func(*EMU)

func WithQuirks(q Quirks) Option {
	return func(emu *EMU) {
		emu.quirks = q
	}
}

func WithTimerMode(m TimerMode) Option {
	return func(emu *EMU) {
		emu.timerMode = m
	}
}

// NewEMU returns a zeroed machine with the font loaded, ready to run a
// program once one is loaded.
func NewEMU(opts ...Option) *EMU {
	emu := &EMU{
		running:  true,
		randIntn: rand.Intn,
	}
	for _, opt := range opts {
		opt(emu)
	}
	emu.loadFont()
	return emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontOffset:], FontSet[:])
}

func (emu *EMU) LoadROM(filename string) error {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return emu.LoadProgram(rom)
}

// LoadProgram copies rom into memory at ProgramStart and resets the program
// counter. Memory outside the ROM is left as it is.
func (emu *EMU) LoadProgram(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(emu.memory[ProgramStart:], rom)
	emu.pc = ProgramStart
	emu.waitKey = false
	return nil
}

func (emu *EMU) Start() {
	emu.pc = ProgramStart
	emu.waitKey = false
	emu.running = true
}

func (emu *EMU) Stop() {
	emu.running = false
}

func (emu *EMU) Pause() {
	emu.running = false
}

func (emu *EMU) Resume() {
	emu.running = true
}

func (emu *EMU) Running() bool {
	return emu.running
}

//blocked on Fx0A
func (emu *EMU) Waiting() bool {
	return emu.waitKey
}

// Tick advances the machine by one frame. The timers count down whatever the
// run state, then one instruction runs unless the machine is paused or
// blocked on a key press.
func (emu *EMU) Tick() error {
	if emu.timerMode == TimerTick {
		emu.timers.decrement()
	}
	if !emu.keyReady() {
		return nil
	}
	if !emu.running {
		return nil
	}
	return emu.EmulateCycle()
}

// Step runs a single instruction even while paused. Timers are untouched.
func (emu *EMU) Step() error {
	if !emu.keyReady() {
		return nil
	}
	return emu.EmulateCycle()
}

// keyReady leaves the waiting state once a key is down and reports whether
// instructions may be fetched.
func (emu *EMU) keyReady() bool {
	if !emu.waitKey {
		return true
	}
	if _, ok := emu.keyState.FirstPressed(); !ok {
		return false
	}
	emu.waitKey = false
	return true
}

// EmulateCycle fetches, decodes and executes the instruction at PC. A
// blocking Fx0A leaves PC on itself so it is fetched again.
func (emu *EMU) EmulateCycle() error {
	pc := emu.pc
	opcode, err := emu.memory.ReadWord(pc)
	if err != nil {
		return fmt.Errorf("pc 0x%03x fetch: %w", pc, err)
	}
	emu.opcode = opcode
	emu.pc += 2

	if err := emu.execute(Decode(opcode)); err != nil {
		return fmt.Errorf("pc 0x%03x opcode 0x%04x: %w", pc, opcode, err)
	}

	if emu.waitKey {
		emu.pc -= 2
	}
	return nil
}

//only has an effect in TimerRealtime mode
func (emu *EMU) AdvanceTimers(elapsed time.Duration) {
	if emu.timerMode == TimerRealtime {
		emu.timers.advance(elapsed)
	}
}

func (emu *EMU) PressKey(key int) {
	emu.keyState.Press(key)
}

func (emu *EMU) ReleaseKey(key int) {
	emu.keyState.Release(key)
}

func (emu *EMU) Resolution() emu.Resolution {
	return displayResolution
}

func (emu *EMU) RenderFrame(buf []byte, target emu.Resolution) error {
	return emu.display.Render(buf, target)
}

// ScreenChanged reports whether the display was cleared or drawn to since
// the previous call.
func (emu *EMU) ScreenChanged() bool {
	changed := emu.updateScreen
	emu.updateScreen = false
	return changed
}

func (emu *EMU) Pixel(x, y int) uint8 {
	return emu.display.Pixel(x, y)
}

func (emu *EMU) Opcode() uint16 {
	return emu.opcode
}

func (emu *EMU) Register(x int) uint8 {
	return emu.V[x&0x0F]
}

func (emu *EMU) SetRegister(x int, v uint8) {
	emu.V[x&0x0F] = v
}

func (emu *EMU) Index() uint16 {
	return emu.I
}

func (emu *EMU) SetIndex(v uint16) {
	emu.I = v
}

func (emu *EMU) PC() uint16 {
	return emu.pc
}

func (emu *EMU) SetPC(v uint16) {
	emu.pc = v
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.timers.delay
}

func (emu *EMU) SetDelayTimer(v uint8) {
	emu.timers.delay = v
}

func (emu *EMU) SoundTimer() uint8 {
	return emu.timers.sound
}

func (emu *EMU) SetSoundTimer(v uint8) {
	emu.timers.sound = v
}

func (emu *EMU) ReadMemory(addr uint16) (uint8, error) {
	return emu.memory.Read(addr)
}

func (emu *EMU) WriteMemory(addr uint16, v uint8) error {
	return emu.memory.Write(addr, v)
}
