// Package haltest provides recording fakes for the hal capabilities.
package haltest

import (
	"tiestrike/hal"
)

// Line is one recorded DrawLine call.
type Line struct {
	X0, Y0, X1, Y1 int
	Color          uint16
}

// Pixel is one recorded DrawPixel call.
type Pixel struct {
	X, Y  int
	Color uint16
}

// Surface records every drawing call.
type Surface struct {
	W, H int

	Fills  []uint16
	Pixels []Pixel
	Lines  []Line
}

var _ hal.Surface = (*Surface)(nil)

// NewSurface returns a recorder with the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{W: w, H: h}
}

func (s *Surface) Size() (w, h int) { return s.W, s.H }

func (s *Surface) FillScreen(c uint16) {
	s.Fills = append(s.Fills, c)
}

func (s *Surface) DrawPixel(x, y int, c uint16) {
	s.Pixels = append(s.Pixels, Pixel{X: x, Y: y, Color: c})
}

func (s *Surface) DrawLine(x0, y0, x1, y1 int, c uint16) {
	s.Lines = append(s.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Reset drops everything recorded so far.
func (s *Surface) Reset() {
	s.Fills = s.Fills[:0]
	s.Pixels = s.Pixels[:0]
	s.Lines = s.Lines[:0]
}

// Buttons is a settable button state.
type Buttons struct {
	Pressed [hal.ButtonCount]bool
}

var _ hal.Buttons = (*Buttons)(nil)

func (b *Buttons) IsPressed(btn hal.Button) bool {
	if btn >= hal.ButtonCount {
		return false
	}
	return b.Pressed[btn]
}

// Press marks buttons as held.
func (b *Buttons) Press(btns ...hal.Button) {
	for _, btn := range btns {
		b.Pressed[btn] = true
	}
}

// ReleaseAll releases every button.
func (b *Buttons) ReleaseAll() {
	b.Pressed = [hal.ButtonCount]bool{}
}

// Logger collects log lines.
type Logger struct {
	Lines []string
}

var _ hal.Logger = (*Logger)(nil)

func (l *Logger) WriteLineString(s string) { l.Lines = append(l.Lines, s) }
func (l *Logger) WriteLineBytes(b []byte)  { l.Lines = append(l.Lines, string(b)) }

// HAL bundles the fakes behind the hal.HAL interface.
type HAL struct {
	Log  *Logger
	Surf *Surface
	Btns *Buttons
	Seed uint32
}

var _ hal.HAL = (*HAL)(nil)

// NewHAL returns a HAL with a w x h recording surface and a fixed entropy seed.
func NewHAL(w, h int, seed uint32) *HAL {
	return &HAL{
		Log:  &Logger{},
		Surf: NewSurface(w, h),
		Btns: &Buttons{},
		Seed: seed,
	}
}

func (h *HAL) Logger() hal.Logger   { return h.Log }
func (h *HAL) Surface() hal.Surface { return h.Surf }
func (h *HAL) Buttons() hal.Buttons { return h.Btns }
func (h *HAL) Entropy() uint32      { return h.Seed }
