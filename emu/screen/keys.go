package screen

import (
	"github.com/beanboi7/chyp8/emu"
	"github.com/faiface/pixel/pixelgl"
)

// DefaultKeyMap lays the hex keypad over the left side of a qwerty keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var DefaultKeyMap = map[uint16]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// PollKeys forwards key presses and releases since the last window update.
func (win *Window) PollKeys(e emu.Emulator) {
	for key, btn := range win.KeyMap {
		if win.JustPressed(btn) {
			e.PressKey(int(key))
		}
		if win.JustReleased(btn) {
			e.ReleaseKey(int(key))
		}
	}
}
