package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBounds(t *testing.T) {
	m := &Memory{}

	require.NoError(t, m.Write(0xFFF, 0x12))
	v, err := m.Read(0xFFF)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x12), v)

	_, err = m.Read(0x1000)
	assert.ErrorIs(t, err, ErrAddressRange)
	assert.ErrorIs(t, m.Write(0x1000, 0), ErrAddressRange)

	require.NoError(t, m.Write(0xFFE, 0xAB))
	w, err := m.ReadWord(0xFFE)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xAB12), w)

	_, err = m.ReadWord(0xFFF)
	assert.ErrorIs(t, err, ErrAddressRange)

	s, err := m.Slice(0xFF0, 16)
	require.NoError(t, err)
	assert.Len(t, s, 16)
	_, err = m.Slice(0xFF0, 17)
	assert.ErrorIs(t, err, ErrAddressRange)
}
