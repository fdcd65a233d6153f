// Package starfield is the parallax background: a fixed pool of points that
// stream toward the camera and are recycled to the far plane.
package starfield

import (
	"tiestrike/hal"
	"tiestrike/strike/rng"
	"tiestrike/strike/wiregl"
)

// MaxStars is the pool capacity.
const MaxStars = 64

// Star is a background point. Only its depth ever changes.
type Star struct {
	Pos   wiregl.Vec3
	Color uint16
}

// Field holds the star pool.
type Field struct {
	view  wiregl.View
	stars [MaxStars]Star
	n     int
}

// New returns an empty field for the given view.
func New(view wiregl.View) *Field {
	return &Field{view: view}
}

// Init scatters count stars (capped at MaxStars) uniformly in a box whose
// depth spans [near, far/2] and whose x/y span the screen rectangle
// projected out to far/2.
func (f *Field) Init(count int, src rng.Source) {
	if count < 0 {
		count = 0
	}
	if count > MaxStars {
		count = MaxStars
	}
	f.n = count

	maxZ := f.view.Far / 2
	hx, hy := f.view.HalfExtent(maxZ)
	for i := 0; i < f.n; i++ {
		level := 0x60 + rng.Byte(src)%0xA0
		f.stars[i] = Star{
			Pos: wiregl.V3(
				rng.Symmetric(src, hx),
				rng.Symmetric(src, hy),
				rng.Range(src, f.view.Near, maxZ),
			),
			Color: wiregl.Grey(level).RGB565(),
		}
	}
}

// Move advances every star toward the camera by speed. A star at or in front
// of the near plane is recycled to exactly the far plane; x/y are kept.
// A negative speed pushes stars away, and one beyond the far plane wraps back
// to just past the near plane.
func (f *Field) Move(speed wiregl.Scalar) {
	for i := 0; i < f.n; i++ {
		s := &f.stars[i]
		s.Pos.Z -= speed
		if s.Pos.Z <= f.view.Near {
			s.Pos.Z = f.view.Far
		} else if s.Pos.Z > f.view.Far {
			s.Pos.Z = f.view.Near + 1
		}
	}
}

// Draw plots every on-screen star as a single pixel.
func (f *Field) Draw(s hal.Surface) {
	for i := 0; i < f.n; i++ {
		st := &f.stars[i]
		if !f.view.Visible(st.Pos) {
			continue
		}
		p := wiregl.ScreenPoint(f.view.Project(st.Pos))
		if !f.view.OnScreen(p) {
			continue
		}
		s.DrawPixel(p.X, p.Y, st.Color)
	}
}

// Len returns the number of stars in use.
func (f *Field) Len() int { return f.n }

// Star returns a copy of star i.
func (f *Field) Star(i int) Star { return f.stars[i] }
