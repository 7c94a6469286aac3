package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu"
)

const (
	DisplayWidth  = 64
	DisplayHeight = 32

	PixelOff uint8 = 0x00
	PixelOn  uint8 = 0xFF
)

var displayResolution = emu.Resolution{Width: DisplayWidth, Height: DisplayHeight}

// Display is the monochrome framebuffer, one intensity byte per pixel,
// row major.
type Display [DisplayWidth * DisplayHeight]uint8

func (d *Display) Clear() {
	for i := range d {
		d[i] = PixelOff
	}
}

// Pixel returns the intensity at x, y. Coordinates off the display read as
// PixelOff.
func (d *Display) Pixel(x, y int) uint8 {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return PixelOff
	}
	return d[y*DisplayWidth+x]
}

// DrawSprite toggles one pixel per set bit of rows, the most significant bit
// being the leftmost. Pixels past the right or bottom edge are clipped.
//
// drawn is true if any set bit was drawn, erased is true if any pixel went
// from on to off.
func (d *Display) DrawSprite(x, y uint8, rows []uint8) (drawn bool, erased bool) {
	for r, row := range rows {
		py := int(y) + r
		for bit := 0; bit < 8; bit++ {
			if row&(0x80>>bit) == 0 {
				continue
			}
			drawn = true

			px := int(x) + bit
			if px >= DisplayWidth || py >= DisplayHeight {
				continue
			}

			i := py*DisplayWidth + px
			if d[i] == PixelOn {
				erased = true
			}
			d[i] = ^d[i]
		}
	}
	return drawn, erased
}

// Render upscales the display into buf with nearest-neighbour sampling. buf
// holds 4 bytes per pixel, only the first three (the colour channels) are
// written, all set to the cell intensity.
func (d *Display) Render(buf []byte, target emu.Resolution) error {
	if target.Width < DisplayWidth || target.Height < DisplayHeight {
		return fmt.Errorf("%w: %dx%d", ErrResolution, target.Width, target.Height)
	}
	if len(buf) < target.Width*target.Height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(buf), target.Width, target.Height)
	}

	pw := target.Width / DisplayWidth
	ph := target.Height / DisplayHeight

	for y := 0; y < target.Height; y++ {
		// trailing rows of a non-integer scale repeat the last row
		dy := y / ph
		if dy >= DisplayHeight {
			dy = DisplayHeight - 1
		}
		for x := 0; x < target.Width; x++ {
			dx := x / pw
			if dx >= DisplayWidth {
				dx = DisplayWidth - 1
			}
			val := d[dy*DisplayWidth+dx]
			o := (y*target.Width + x) * 4
			buf[o] = val
			buf[o+1] = val
			buf[o+2] = val
		}
	}

	return nil
}
