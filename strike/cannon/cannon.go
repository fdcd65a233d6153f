// Package cannon models the player's laser: Ready → Firing → Cooldown → Ready.
package cannon

import (
	"tiestrike/hal"
	"tiestrike/strike/rng"
	"tiestrike/strike/wiregl"
)

// State is the cannon phase.
type State uint8

const (
	Ready State = iota
	Firing
	Cooldown
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Firing:
		return "firing"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// BeamJitter is the max pixel offset of the beam tip around the target.
const BeamJitter = 2

// Cannon is the weapon state machine.
type Cannon struct {
	FiringTicks   int
	CooldownTicks int

	state  State
	ticks  int
	target wiregl.Point
}

// New returns a ready cannon. Both durations are at least one frame.
func New(firingTicks, cooldownTicks int) *Cannon {
	if firingTicks < 1 {
		firingTicks = 1
	}
	if cooldownTicks < 1 {
		cooldownTicks = 1
	}
	return &Cannon{FiringTicks: firingTicks, CooldownTicks: cooldownTicks}
}

func (c *Cannon) State() State         { return c.state }
func (c *Cannon) Firing() bool         { return c.state == Firing }
func (c *Cannon) Target() wiregl.Point { return c.target }

// Update advances the state machine by one frame. fire is honored only while
// Ready; it latches aim as the target until the cannon is Ready again.
// Update reports whether a shot started this frame.
func (c *Cannon) Update(fire bool, aim wiregl.Point) (fired bool) {
	switch c.state {
	case Ready:
		if fire {
			c.state = Firing
			c.ticks = 0
			c.target = aim
			return true
		}
	case Firing:
		c.ticks++
		if c.ticks >= c.FiringTicks {
			c.state = Cooldown
			c.ticks = 0
		}
	case Cooldown:
		c.ticks++
		if c.ticks >= c.CooldownTicks {
			c.state = Ready
			c.ticks = 0
		}
	}
	return false
}

// DrawBeam draws the laser from a random bottom corner to a jittered point
// around the target, in a random color. It draws nothing unless Firing.
func (c *Cannon) DrawBeam(s hal.Surface, src rng.Source) {
	if c.state != Firing {
		return
	}
	w, h := s.Size()
	x0 := 0
	if rng.Bool(src) {
		x0 = w - 1
	}
	y0 := h - 1

	x1 := c.target.X + rng.Intn(src, 2*BeamJitter+1) - BeamJitter
	y1 := c.target.Y + rng.Intn(src, 2*BeamJitter+1) - BeamJitter
	col := wiregl.RGB(rng.Byte(src), rng.Byte(src), rng.Byte(src)).RGB565()
	s.DrawLine(x0, y0, x1, y1, col)
}
