//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7735"
)

const (
	st7735Width  = 128
	st7735Height = 160
)

// st7735Surface draws straight to the panel; there is no framebuffer.
type st7735Surface struct {
	dev st7735.Device
	w   int
	h   int
}

// newST7735Surface brings up a 1.8" ST7735 on SPI0:
// SCK GP18, SDO GP19, CS GP17, DC GP20, RST GP21, BL GP22.
func newST7735Surface() (*st7735Surface, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 24_000_000,
	}); err != nil {
		return nil, err
	}

	dev := st7735.New(spi, machine.GP21, machine.GP20, machine.GP17, machine.GP22)
	dev.Configure(st7735.Config{
		Width:  st7735Width,
		Height: st7735Height,
		Model:  st7735.GREENTAB,
	})

	return &st7735Surface{dev: dev, w: st7735Width, h: st7735Height}, nil
}

func (s *st7735Surface) Size() (w, h int) { return s.w, s.h }

func (s *st7735Surface) FillScreen(c uint16) {
	s.dev.FillScreen(rgbaFrom565(c))
}

func (s *st7735Surface) DrawPixel(x, y int, c uint16) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.dev.SetPixel(int16(x), int16(y), rgbaFrom565(c))
}

func (s *st7735Surface) DrawLine(x0, y0, x1, y1 int, c uint16) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, s.w, s.h)
	if !ok {
		return
	}
	rgba := rgbaFrom565(c)
	plotLine(x0, y0, x1, y1, func(x, y int) {
		s.dev.SetPixel(int16(x), int16(y), rgba)
	})
}
