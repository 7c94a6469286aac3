package cpu

import (
	"testing"

	"github.com/beanboi7/chyp8/emu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSpriteClips(t *testing.T) {
	d := &Display{}

	drawn, erased := d.DrawSprite(60, 30, []uint8{0xFF, 0xFF, 0xFF})
	assert.True(t, drawn)
	assert.False(t, erased)

	lit := 0
	for _, c := range d {
		if c == PixelOn {
			lit++
		}
	}
	// 4 columns by 2 rows fit on screen
	assert.Equal(t, 8, lit)
	assert.Equal(t, PixelOn, d.Pixel(63, 31))
	assert.Equal(t, PixelOff, d.Pixel(0, 31))
	assert.Equal(t, PixelOff, d.Pixel(0, 0))

	drawn, _ = d.DrawSprite(200, 200, []uint8{0x01})
	assert.True(t, drawn)
}

func TestPixelOffDisplay(t *testing.T) {
	d := &Display{}
	for i := range d {
		d[i] = PixelOn
	}
	assert.Equal(t, PixelOn, d.Pixel(63, 31))
	assert.Equal(t, PixelOff, d.Pixel(64, 0))
	assert.Equal(t, PixelOff, d.Pixel(0, 32))
	assert.Equal(t, PixelOff, d.Pixel(-1, 0))
	assert.Equal(t, PixelOff, d.Pixel(0, -1))
}

func TestDrawSpriteXOR(t *testing.T) {
	d := &Display{}
	d.DrawSprite(0, 0, []uint8{0xF0})
	_, erased := d.DrawSprite(2, 0, []uint8{0xF0})
	assert.True(t, erased)

	want := []uint8{PixelOn, PixelOn, PixelOff, PixelOff, PixelOn, PixelOn, PixelOff}
	for x, w := range want {
		assert.Equal(t, w, d.Pixel(x, 0), "x %d", x)
	}

	d.Clear()
	for _, c := range d {
		assert.Equal(t, PixelOff, c)
	}
}

func TestRender(t *testing.T) {
	d := &Display{}
	d.DrawSprite(0, 0, []uint8{0x80})
	d.DrawSprite(63, 31, []uint8{0x80})

	target := emu.Resolution{Width: 128, Height: 64}
	buf := make([]byte, 128*64*4)
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 0x42
	}
	require.NoError(t, d.Render(buf, target))

	at := func(x, y int) []byte {
		o := (y*target.Width + x) * 4
		return buf[o : o+4]
	}

	// top left logical pixel covers a 2x2 block
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x42}, at(p[0], p[1]))
	}
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x42}, at(2, 0))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x42}, at(0, 2))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x42}, at(127, 63))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x42}, at(126, 62))
}

func TestRenderNonIntegerScale(t *testing.T) {
	d := &Display{}
	d.DrawSprite(63, 31, []uint8{0x80})

	target := emu.Resolution{Width: 130, Height: 33}
	buf := make([]byte, 130*33*4)
	require.NoError(t, d.Render(buf, target))

	o := (32*130 + 129) * 4
	assert.Equal(t, uint8(0xFF), buf[o])
}

func TestRenderErrors(t *testing.T) {
	d := &Display{}
	assert.ErrorIs(t, d.Render(make([]byte, 32*16*4), emu.Resolution{Width: 32, Height: 16}), ErrResolution)
	assert.ErrorIs(t, d.Render(make([]byte, 10), emu.Resolution{Width: 64, Height: 32}), ErrBufferSize)
}
