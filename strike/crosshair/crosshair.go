// Package crosshair maps the directional buttons to the aiming reticle.
package crosshair

import (
	"tiestrike/hal"
	"tiestrike/strike/wiregl"
)

// armLen is the reticle arm length in pixels.
const armLen = 3

// Crosshair is the reticle offset from the screen center, y up.
type Crosshair struct {
	X, Y int
	Step int

	w, h         int
	halfW, halfH int
}

// New returns a centered crosshair for a w*h screen.
func New(w, h, step int) *Crosshair {
	if step < 1 {
		step = 1
	}
	return &Crosshair{
		Step:  step,
		w:     w,
		h:     h,
		halfW: w / 2,
		halfH: h / 2,
	}
}

// Update applies one frame of held directional buttons.
func (c *Crosshair) Update(b hal.Buttons) {
	if b == nil {
		return
	}
	dx, dy := 0, 0
	if b.IsPressed(hal.ButtonRight) {
		dx += c.Step
	}
	if b.IsPressed(hal.ButtonLeft) {
		dx -= c.Step
	}
	if b.IsPressed(hal.ButtonUp) {
		dy += c.Step
	}
	if b.IsPressed(hal.ButtonDown) {
		dy -= c.Step
	}
	c.Nudge(dx, dy)
}

// Nudge moves the offset, wrapping past ±half the screen to the opposite
// extreme.
func (c *Crosshair) Nudge(dx, dy int) {
	c.X = wrap(c.X+dx, c.halfW)
	c.Y = wrap(c.Y+dy, c.halfH)
}

func wrap(v, half int) int {
	if v > half {
		return -half
	}
	if v < -half {
		return half
	}
	return v
}

// Screen returns the reticle position in screen coordinates.
func (c *Crosshair) Screen() wiregl.Point {
	return wiregl.Point{X: c.halfW + c.X, Y: c.halfH - c.Y}
}

// Draw plots the reticle as a small open cross.
func (c *Crosshair) Draw(s hal.Surface, color uint16) {
	p := c.Screen()
	s.DrawLine(p.X-armLen, p.Y, p.X-1, p.Y, color)
	s.DrawLine(p.X+1, p.Y, p.X+armLen, p.Y, color)
	s.DrawLine(p.X, p.Y-armLen, p.X, p.Y-1, color)
	s.DrawLine(p.X, p.Y+1, p.X, p.Y+armLen, color)
}
