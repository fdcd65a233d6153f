// Package tie is the fixed-capacity pool of wireframe targets.
//
// Slots are addressed by index; a dead slot is immediately reusable.
package tie

import (
	"tiestrike/hal"
	"tiestrike/strike/rng"
	"tiestrike/strike/wiregl"
)

// MaxTies is the pool capacity.
const MaxTies = 8

// State is the lifecycle of one slot.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Tie is one target.
type Tie struct {
	State State
	Pos   wiregl.Vec3
	Vel   wiregl.Vec3

	// Bounds is the screen-space box from the last Render.
	Bounds wiregl.Rect
}

// Motion bounds the randomized spawn velocity.
type Motion struct {
	// Lateral is the half-range of the x/y velocity.
	Lateral wiregl.Scalar
	// MinInbound and MaxInbound bound the approach speed; the depth velocity
	// is always negative.
	MinInbound wiregl.Scalar
	MaxInbound wiregl.Scalar
}

// Shot is the cannon state seen by the hit test.
type Shot struct {
	Firing bool
	Target wiregl.Point
}

// Kill describes a destroyed tie at the moment of death.
type Kill struct {
	Slot int
	Tie  Tie
}

// Pool holds the ties.
type Pool struct {
	view   wiregl.View
	model  *wiregl.Model
	motion Motion
	src    rng.Source

	ties [MaxTies]Tie
	n    int
}

// NewPool returns a pool with n slots (capped at MaxTies), all dead.
func NewPool(n int, view wiregl.View, model *wiregl.Model, motion Motion, src rng.Source) *Pool {
	if n < 0 {
		n = 0
	}
	if n > MaxTies {
		n = MaxTies
	}
	if model == nil {
		model = &wiregl.TieFighter
	}
	return &Pool{
		view:   view,
		model:  model,
		motion: motion,
		src:    src,
		n:      n,
	}
}

// Len returns the number of slots.
func (p *Pool) Len() int { return p.n }

// Get returns slot i.
func (p *Pool) Get(i int) *Tie {
	if i < 0 || i >= p.n {
		return nil
	}
	return &p.ties[i]
}

// Model returns the shared wireframe topology.
func (p *Pool) Model() *wiregl.Model { return p.model }

// SpawnAll spawns every slot.
func (p *Pool) SpawnAll() {
	for i := 0; i < p.n; i++ {
		p.Spawn(i)
	}
}

// Spawn resets slot i to a random position at twice the far plane, inside
// the screen rectangle projected to that depth, and marks it alive.
func (p *Pool) Spawn(i int) {
	if i < 0 || i >= p.n {
		return
	}
	z := 2 * p.view.Far
	hx, hy := p.view.HalfExtent(z)
	p.ties[i] = Tie{
		State: Alive,
		Pos: wiregl.V3(
			rng.Symmetric(p.src, hx),
			rng.Symmetric(p.src, hy),
			z,
		),
		Vel: wiregl.V3(
			rng.Symmetric(p.src, p.motion.Lateral),
			rng.Symmetric(p.src, p.motion.Lateral),
			-rng.Range(p.src, p.motion.MinInbound, p.motion.MaxInbound),
		),
	}
}

// Update moves every live tie. A tie reaching the near plane escaped: it is
// respawned and counted. Update returns the number of escapes.
func (p *Pool) Update() (misses int) {
	for i := 0; i < p.n; i++ {
		t := &p.ties[i]
		if t.State != Alive {
			continue
		}
		t.Pos = t.Pos.Add(t.Vel)
		if t.Pos.Z <= p.view.Near {
			p.Spawn(i)
			misses++
		}
	}
	return misses
}

// Render draws every live tie and records its screen bounds. When shot is
// firing and its target lies strictly inside a tie's bounds, that tie is
// destroyed: onKill sees it as it was, then the slot respawns. Each tie is
// tested on its own, so one shot may destroy several overlapping ties.
func (p *Pool) Render(s hal.Surface, shot Shot, onKill func(Kill)) (kills int) {
	for i := 0; i < p.n; i++ {
		t := &p.ties[i]
		if t.State != Alive {
			continue
		}
		t.Bounds = p.draw(s, t)

		if !shot.Firing || !t.Bounds.ContainsStrict(shot.Target) {
			continue
		}
		if onKill != nil {
			onKill(Kill{Slot: i, Tie: *t})
		}
		t.State = Dead
		p.Spawn(i)
		kills++
	}
	return kills
}

func (p *Pool) draw(s hal.Surface, t *Tie) wiregl.Rect {
	var box wiregl.Rect
	level := wiregl.DepthBrightness(t.Pos.Z, p.view.Far)
	for e := range p.model.Edges {
		a, b := p.model.Endpoints(e, t.Pos)
		ax, ay := p.view.ProjectClamped(a)
		bx, by := p.view.ProjectClamped(b)
		box.Extend(ax, ay)
		box.Extend(bx, by)

		c := p.model.Edges[e].Color.Scale(level).RGB565()
		pa := wiregl.ScreenPoint(ax, ay)
		pb := wiregl.ScreenPoint(bx, by)
		s.DrawLine(pa.X, pa.Y, pb.X, pb.Y, c)
	}
	return box
}
