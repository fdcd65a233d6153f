package game

import (
	"strings"
	"testing"

	"tiestrike/hal"
	"tiestrike/internal/haltest"
	"tiestrike/strike/cannon"
	"tiestrike/strike/rng"
	"tiestrike/strike/tie"
	"tiestrike/strike/wiregl"
)

type harness struct {
	g       *Game
	surface *haltest.Surface
	buttons *haltest.Buttons
	log     *haltest.Logger
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TieCount = 1
	if mutate != nil {
		mutate(&cfg)
	}
	h := &harness{
		surface: haltest.NewSurface(cfg.Width, cfg.Height),
		buttons: &haltest.Buttons{},
		log:     &haltest.Logger{},
	}
	h.g = New(cfg, h.surface, h.buttons, h.log, rng.NewXorshift32(1234))
	return h
}

// park puts tie 0 at pos with no motion.
func (h *harness) park(pos wiregl.Vec3) *tie.Tie {
	tt := h.g.Ties().Get(0)
	tt.Pos = pos
	tt.Vel = wiregl.Vec3{}
	return tt
}

func (h *harness) logged(substr string) int {
	n := 0
	for _, l := range h.log.Lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

func TestNewSession(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.TieCount = 3 })
	s := h.g.Session()
	if s.State != Running || s.Score != 0 || s.Hits != 0 || s.Misses != 0 {
		t.Fatalf("fresh session %+v", s)
	}
	if h.g.Stars().Len() != DefaultConfig().StarCount {
		t.Fatalf("stars = %d", h.g.Stars().Len())
	}
	for i := 0; i < h.g.Ties().Len(); i++ {
		tt := h.g.Ties().Get(i)
		if tt.State != tie.Alive || tt.Pos.Z != 2*DefaultConfig().Far {
			t.Fatalf("tie %d not spawned: %+v", i, tt)
		}
	}
	if s.Cannon.State() != cannon.Ready {
		t.Fatalf("cannon %v, want ready", s.Cannon.State())
	}
}

func TestFrameRedrawsWholeScreen(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 3; i++ {
		h.g.Frame()
	}
	if len(h.surface.Fills) != 3 {
		t.Fatalf("FillScreen called %d times over 3 frames", len(h.surface.Fills))
	}
	if h.g.Session().Frames != 3 {
		t.Fatalf("Frames = %d", h.g.Session().Frames)
	}
}

func TestSpeedButtons(t *testing.T) {
	h := newHarness(t, nil)
	base := h.g.Session().PlayerSpeed

	h.buttons.Press(hal.ButtonSpeedUp)
	for i := 0; i < 4; i++ {
		h.g.Frame()
	}
	if got := h.g.Session().PlayerSpeed; got != base+4 {
		t.Fatalf("speed %d, want %d", got, base+4)
	}

	h.buttons.ReleaseAll()
	h.buttons.Press(hal.ButtonSpeedDown)
	for i := 0; i < 20; i++ {
		h.g.Frame()
	}
	if got := h.g.Session().PlayerSpeed; got != base+4-20 {
		t.Fatalf("speed %d, want %d (uncapped)", got, base+4-20)
	}
}

func TestMissCountsOnce(t *testing.T) {
	h := newHarness(t, nil)
	tt := h.park(wiregl.V3(0, 0, 12))
	tt.Vel = wiregl.V3(0, 0, -5)

	h.g.Frame()
	if got := h.g.Session().Misses; got != 1 {
		t.Fatalf("misses = %d, want 1", got)
	}
	if got := h.g.Ties().Get(0).Pos.Z; got != 2*DefaultConfig().Far {
		t.Fatalf("escaped tie depth %v, want respawn", got)
	}

	h.g.Frame()
	if got := h.g.Session().Misses; got != 1 {
		t.Fatalf("misses = %d after a quiet frame, want 1", got)
	}
}

func TestHitScoresByDepth(t *testing.T) {
	h := newHarness(t, nil)
	h.park(wiregl.V3(0, 0, 100))
	h.buttons.Press(hal.ButtonFire)

	h.g.Frame()

	s := h.g.Session()
	if s.Cannon.State() != cannon.Firing {
		t.Fatalf("cannon %v, want firing", s.Cannon.State())
	}
	if s.Hits != 1 || s.Score != 100 {
		t.Fatalf("hits=%d score=%d, want 1 and 100", s.Hits, s.Score)
	}
	if h.g.Explosions().Active() != 1 {
		t.Fatalf("active explosions = %d, want 1", h.g.Explosions().Active())
	}
	if tt := h.g.Ties().Get(0); tt.State != tie.Alive || tt.Pos.Z != 2*DefaultConfig().Far {
		t.Fatalf("tie not respawned: %+v", tt)
	}
	if h.logged("tiestrike: hit") != 1 {
		t.Fatalf("hit log lines: %q", h.log.Lines)
	}
}

func TestHitNeedsFiring(t *testing.T) {
	h := newHarness(t, nil)
	h.park(wiregl.V3(0, 0, 100))
	for i := 0; i < 5; i++ {
		h.g.Frame()
	}
	if h.g.Session().Hits != 0 {
		t.Fatal("hit registered without firing")
	}
}

func TestLatchedTargetIgnoresCrosshairAfterFiring(t *testing.T) {
	h := newHarness(t, nil)
	h.park(wiregl.V3(400, 400, 300))
	h.buttons.Press(hal.ButtonFire)
	h.g.Frame()
	latched := h.g.Session().Cannon.Target()

	h.buttons.ReleaseAll()
	h.buttons.Press(hal.ButtonRight)
	h.g.Frame()
	if got := h.g.Session().Cannon.Target(); got != latched {
		t.Fatalf("target moved from %+v to %+v while firing", latched, got)
	}
	if h.g.Session().Crosshair.X == 0 {
		t.Fatal("crosshair did not move")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.MissLimit = 2 })

	escape := func() {
		tt := h.park(wiregl.V3(0, 0, 11))
		tt.Vel = wiregl.V3(0, 0, -5)
		h.g.Frame()
	}

	escape()
	escape()
	if h.g.Session().State != Running {
		t.Fatalf("state %v at misses == limit, want running", h.g.Session().State)
	}
	escape()
	s := h.g.Session()
	if s.State != Over || s.Misses != 3 {
		t.Fatalf("state %v misses %d, want over at 3", s.State, s.Misses)
	}

	frames := s.Frames
	fills := len(h.surface.Fills)
	h.buttons.Press(hal.ButtonFire, hal.ButtonRight, hal.ButtonSpeedUp)
	for i := 0; i < 10; i++ {
		h.g.Frame()
	}
	if s.State != Over {
		t.Fatal("left the over state")
	}
	if s.Frames != frames {
		t.Fatal("simulation kept running after game over")
	}
	if s.Crosshair.X != 0 {
		t.Fatal("input accepted after game over")
	}
	if got := len(h.surface.Fills) - fills; got != 1 {
		t.Fatalf("game over card drawn %d times, want 1", got)
	}
	if h.logged("tiestrike: game over") != 1 {
		t.Fatalf("game over logged %d times", h.logged("tiestrike: game over"))
	}
}

func TestExplosionOverflowIsCosmetic(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.ExplosionCount = 1 })
	h.buttons.Press(hal.ButtonFire)

	for shot := 0; shot < 2; shot++ {
		// Keep the tie out of the beam until the cannon is ready again.
		for h.g.Session().Cannon.State() != cannon.Ready {
			h.park(wiregl.V3(400, 400, 300))
			h.g.Frame()
		}
		h.park(wiregl.V3(0, 0, 100))
		h.g.Frame()
	}

	s := h.g.Session()
	if s.Hits != 2 || s.Score != 200 {
		t.Fatalf("hits=%d score=%d, want 2 and 200", s.Hits, s.Score)
	}
	if h.g.Explosions().Active() != 1 {
		t.Fatalf("active explosions = %d, want 1", h.g.Explosions().Active())
	}
	if h.logged("effect dropped") != 1 {
		t.Fatalf("drop log lines: %q", h.log.Lines)
	}
}

func TestWithSeedLogs(t *testing.T) {
	h := newHarness(t, nil)
	h.g.WithSeed(0xBEEF)
	if h.g.Session().Seed != 0xBEEF || h.logged("seed=") != 1 {
		t.Fatalf("seed not recorded: %+v %q", h.g.Session().Seed, h.log.Lines)
	}
}
