package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypad(t *testing.T) {
	k := &Keypad{}

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	k.Press(9)
	k.Press(3)
	assert.True(t, k.Pressed(9))
	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, 3, key)

	k.Release(3)
	key, _ = k.FirstPressed()
	assert.Equal(t, 9, key)

	// outside the matrix
	k.Press(16)
	k.Press(-1)
	assert.False(t, k.Pressed(16))
	assert.False(t, k.Pressed(-1))
	k.Release(99)
}
