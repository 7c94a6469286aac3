// Package screen is the pixelgl front end: it blits the emulator's
// framebuffer, feeds it key events and draws the debug overlay.
package screen

import (
	"fmt"
	"image"

	"github.com/beanboi7/chyp8/emu"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// the overlay panel is drawn at twice its logical resolution
const panelScale = 2

type Config struct {
	Title string
	Scale int
	Debug bool

	Display emu.Resolution
	Panel   emu.Resolution
}

type Window struct {
	*pixelgl.Window
	KeyMap map[uint16]pixelgl.Button
	Debug  bool

	target emu.Resolution
	panel  emu.Resolution
	frame  *image.RGBA
	sprite *pixel.Sprite
	txt    *text.Text
	imd    *imdraw.IMDraw
}

func NewWindow(cfg Config) (*Window, error) {
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("window scale %d", cfg.Scale)
	}

	target := emu.Resolution{
		Width:  cfg.Display.Width * cfg.Scale,
		Height: cfg.Display.Height * cfg.Scale,
	}
	panel := emu.Resolution{
		Width:  cfg.Panel.Width * panelScale,
		Height: cfg.Panel.Height * panelScale,
	}

	height := target.Height
	if panel.Height > height {
		height = panel.Height
	}

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  cfg.Title,
		Bounds: pixel.R(0, 0, float64(target.Width+panel.Width), float64(height)),
		VSync:  true,
	})
	if err != nil {
		return nil, err
	}

	// alpha is never written by the emulator
	frame := image.NewRGBA(image.Rect(0, 0, target.Width, target.Height))
	for i := 3; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 0xFF
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	txt := text.New(pixel.V(float64(target.Width)+8, float64(height)-atlas.LineHeight()-4), atlas)
	txt.Color = colornames.Lightgreen

	return &Window{
		Window: win,
		KeyMap: DefaultKeyMap,
		Debug:  cfg.Debug,
		target: target,
		panel:  panel,
		frame:  frame,
		txt:    txt,
		imd:    imdraw.New(nil),
	}, nil
}

// Draw renders the emulator's display and, in debug mode, the overlay lines.
// The frame is only rendered again when changed is set; the previous one is
// reused otherwise. The window still has to be updated by the caller.
func (win *Window) Draw(e emu.Emulator, changed bool, lines []string) error {
	if changed || win.sprite == nil {
		if err := e.RenderFrame(win.frame.Pix, win.target); err != nil {
			return err
		}

		pic := pixel.PictureDataFromImage(win.frame)
		if win.sprite == nil {
			win.sprite = pixel.NewSprite(pic, pic.Bounds())
		} else {
			win.sprite.Set(pic, pic.Bounds())
		}
	}

	win.Clear(colornames.Black)

	centre := pixel.V(float64(win.target.Width)/2, win.Bounds().H()-float64(win.target.Height)/2)
	win.sprite.Draw(win, pixel.IM.Moved(centre))

	if !win.Debug {
		return nil
	}

	left := float64(win.target.Width)
	win.imd.Clear()
	win.imd.Color = colornames.Darkslategray
	win.imd.Push(pixel.V(left, 0), pixel.V(left+float64(win.panel.Width), win.Bounds().H()))
	win.imd.Rectangle(0)
	win.imd.Draw(win)

	win.txt.Clear()
	for _, l := range lines {
		fmt.Fprintln(win.txt, l)
	}
	win.txt.Draw(win, pixel.IM)

	return nil
}
