package starfield

import (
	"testing"

	"tiestrike/internal/haltest"
	"tiestrike/strike/rng"
	"tiestrike/strike/wiregl"
)

var testView = wiregl.View{W: 128, H: 160, Near: 10, Far: 500, ViewDistance: 64}

func TestInitBounds(t *testing.T) {
	f := New(testView)
	f.Init(40, rng.NewXorshift32(1))
	if f.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", f.Len())
	}
	hx, hy := testView.HalfExtent(testView.Far / 2)
	for i := 0; i < f.Len(); i++ {
		p := f.Star(i).Pos
		if p.Z < testView.Near || p.Z >= testView.Far/2 {
			t.Fatalf("star %d depth %v outside [near, far/2)", i, p.Z)
		}
		if p.X < -hx || p.X >= hx || p.Y < -hy || p.Y >= hy {
			t.Fatalf("star %d at (%v,%v) outside volume", i, p.X, p.Y)
		}
	}
}

func TestInitCapsCount(t *testing.T) {
	f := New(testView)
	f.Init(MaxStars+10, rng.NewXorshift32(1))
	if f.Len() != MaxStars {
		t.Fatalf("Len() = %d, want %d", f.Len(), MaxStars)
	}
}

func TestMoveRecyclesToFarPlane(t *testing.T) {
	f := New(testView)
	f.Init(16, rng.NewXorshift32(3))

	before := make([]Star, f.Len())
	for i := range before {
		before[i] = f.Star(i)
	}

	// Enough steps for every star to reach the near plane at least once.
	const speed = 7
	recycled := make([]bool, f.Len())
	for step := 0; step < 100; step++ {
		prev := make([]wiregl.Scalar, f.Len())
		for i := range prev {
			prev[i] = f.Star(i).Pos.Z
		}
		f.Move(speed)
		for i := 0; i < f.Len(); i++ {
			s := f.Star(i)
			if prev[i]-speed <= testView.Near {
				if s.Pos.Z != testView.Far {
					t.Fatalf("star %d depth %v after crossing, want %v", i, s.Pos.Z, testView.Far)
				}
				recycled[i] = true
			}
			if s.Pos.X != before[i].Pos.X || s.Pos.Y != before[i].Pos.Y {
				t.Fatalf("star %d x/y changed", i)
			}
		}
	}
	for i, ok := range recycled {
		if !ok {
			t.Fatalf("star %d never recycled", i)
		}
	}
}

func TestMoveNegativeSpeedStaysInVolume(t *testing.T) {
	f := New(testView)
	f.Init(8, rng.NewXorshift32(5))
	for step := 0; step < 200; step++ {
		f.Move(-9)
		for i := 0; i < f.Len(); i++ {
			z := f.Star(i).Pos.Z
			if z <= testView.Near || z > testView.Far {
				t.Fatalf("depth %v escaped the clip volume", z)
			}
		}
	}
}

func TestDrawSkipsOffscreen(t *testing.T) {
	f := New(testView)
	f.n = 3
	f.stars[0] = Star{Pos: wiregl.V3(0, 0, 100), Color: 0xFFFF}
	f.stars[1] = Star{Pos: wiregl.V3(1000, 0, 100), Color: 0xFFFF}
	f.stars[2] = Star{Pos: wiregl.V3(0, -1000, 100), Color: 0xFFFF}

	s := haltest.NewSurface(128, 160)
	f.Draw(s)
	if len(s.Pixels) != 1 {
		t.Fatalf("drew %d pixels, want 1", len(s.Pixels))
	}
	if p := s.Pixels[0]; p.X != 64 || p.Y != 80 {
		t.Fatalf("pixel at (%d,%d), want (64,80)", p.X, p.Y)
	}
}
