package cpu

import "github.com/beanboi7/chyp8/logger"

const NumKeys = 16

// Keypad is the 16 key input matrix. It is written by the host between
// ticks and only read by instructions.
type Keypad [NumKeys]bool

func (k *Keypad) Press(key int) {
	if key < 0 || key >= NumKeys {
		logger.Logf("keypad", "ignoring press of key %d", key)
		return
	}
	k[key] = true
}

func (k *Keypad) Release(key int) {
	if key < 0 || key >= NumKeys {
		logger.Logf("keypad", "ignoring release of key %d", key)
		return
	}
	k[key] = false
}

func (k *Keypad) Pressed(key int) bool {
	if key < 0 || key >= NumKeys {
		return false
	}
	return k[key]
}

//lowest index wins
func (k *Keypad) FirstPressed() (int, bool) {
	for i, down := range k {
		if down {
			return i, true
		}
	}
	return 0, false
}
