// Package explosion is the fixed-capacity pool of shrapnel effects spawned
// when a tie is destroyed.
package explosion

import (
	"tiestrike/hal"
	"tiestrike/strike/rng"
	"tiestrike/strike/wiregl"
)

// MaxExplosions is the pool capacity.
const MaxExplosions = 8

// DefaultLifetime is the age, in frames, after which an explosion ends.
const DefaultLifetime = 100

// Shrapnel is one edge of the destroyed model flying on its own.
type Shrapnel struct {
	A, B wiregl.Vec3
	Vel  wiregl.Vec3
}

// Explosion is one effect slot.
type Explosion struct {
	Active bool
	Age    int
	Color  wiregl.Color

	pieces [wiregl.MaxEdges]Shrapnel
	n      int
}

// Pieces returns the live shrapnel of e.
func (e *Explosion) Pieces() []Shrapnel { return e.pieces[:e.n] }

// Spread bounds the randomized shrapnel velocity.
type Spread struct {
	// Lateral is the half-range added to the source's x/y velocity.
	Lateral wiregl.Scalar
	// Depth is the maximum toward-camera drift.
	Depth wiregl.Scalar
}

// Pool holds the explosions.
type Pool struct {
	view     wiregl.View
	lifetime int
	spread   Spread
	src      rng.Source

	fx [MaxExplosions]Explosion
	n  int
}

// NewPool returns a pool with n slots (capped at MaxExplosions).
func NewPool(n int, view wiregl.View, lifetime int, spread Spread, src rng.Source) *Pool {
	if n < 0 {
		n = 0
	}
	if n > MaxExplosions {
		n = MaxExplosions
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Pool{
		view:     view,
		lifetime: lifetime,
		spread:   spread,
		src:      src,
		n:        n,
	}
}

// Len returns the number of slots.
func (p *Pool) Len() int { return p.n }

// Get returns slot i.
func (p *Pool) Get(i int) *Explosion {
	if i < 0 || i >= p.n {
		return nil
	}
	return &p.fx[i]
}

// Active returns the number of running explosions.
func (p *Pool) Active() int {
	n := 0
	for i := 0; i < p.n; i++ {
		if p.fx[i].Active {
			n++
		}
	}
	return n
}

// Trigger starts an explosion of model m placed at pos and moving at vel in
// the first free slot. Each model edge becomes one piece of shrapnel. With no
// free slot the effect is dropped and ok is false.
func (p *Pool) Trigger(m *wiregl.Model, pos, vel wiregl.Vec3) (slot int, ok bool) {
	if m == nil {
		return -1, false
	}
	slot = -1
	for i := 0; i < p.n; i++ {
		if !p.fx[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return -1, false
	}

	e := &p.fx[slot]
	e.Active = true
	e.Age = 0
	e.Color = wiregl.RGB(0xFF, 0xA0+rng.Byte(p.src)%0x60, rng.Byte(p.src)%0x40)
	e.n = len(m.Edges)
	if e.n > wiregl.MaxEdges {
		e.n = wiregl.MaxEdges
	}
	for i := 0; i < e.n; i++ {
		a, b := m.Endpoints(i, pos)
		e.pieces[i] = Shrapnel{
			A: a,
			B: b,
			Vel: wiregl.V3(
				vel.X+rng.Symmetric(p.src, p.spread.Lateral),
				vel.Y+rng.Symmetric(p.src, p.spread.Lateral),
				-rng.Range(p.src, 0, p.spread.Depth),
			),
		}
	}
	return slot, true
}

// Update advances every piece of every active explosion and retires those
// older than the lifetime.
func (p *Pool) Update() {
	for i := 0; i < p.n; i++ {
		e := &p.fx[i]
		if !e.Active {
			continue
		}
		for j := 0; j < e.n; j++ {
			s := &e.pieces[j]
			s.A = s.A.Add(s.Vel)
			s.B = s.B.Add(s.Vel)
		}
		e.Age++
		if e.Age > p.lifetime {
			e.Active = false
		}
	}
}

// Render draws every piece with at least one endpoint beyond the near plane.
// Pieces fully in front of it are skipped this frame but kept.
func (p *Pool) Render(s hal.Surface) {
	for i := 0; i < p.n; i++ {
		e := &p.fx[i]
		if !e.Active {
			continue
		}
		c := e.Color.Scale(p.fade(e.Age)).RGB565()
		for j := 0; j < e.n; j++ {
			sh := &e.pieces[j]
			if !p.view.Visible(sh.A) && !p.view.Visible(sh.B) {
				continue
			}
			a := wiregl.ScreenPoint(p.view.ProjectClamped(sh.A))
			b := wiregl.ScreenPoint(p.view.ProjectClamped(sh.B))
			s.DrawLine(a.X, a.Y, b.X, b.Y, c)
		}
	}
}

func (p *Pool) fade(age int) uint8 {
	left := p.lifetime - age
	if left <= 0 {
		return 0x20
	}
	level := 0x20 + (0xFF-0x20)*left/p.lifetime
	return uint8(level)
}
