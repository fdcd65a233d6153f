// Package game runs one session: it owns the pools and the session state and
// sequences them once per frame.
package game

import (
	"fmt"

	"tiestrike/hal"
	"tiestrike/strike/cannon"
	"tiestrike/strike/crosshair"
	"tiestrike/strike/explosion"
	"tiestrike/strike/hud"
	"tiestrike/strike/rng"
	"tiestrike/strike/starfield"
	"tiestrike/strike/tie"
	"tiestrike/strike/wiregl"
)

var (
	background    = wiregl.Black.RGB565()
	crosshairTint = wiregl.RGB(0x50, 0xFF, 0x50).RGB565()
)

// Game is the frame orchestrator.
type Game struct {
	cfg  Config
	view wiregl.View

	surface hal.Surface
	buttons hal.Buttons
	log     hal.Logger
	src     rng.Source

	sess Session

	stars *starfield.Field
	ties  *tie.Pool
	fx    *explosion.Pool

	overShown bool
}

// New builds a running session. The source is the session RNG; it is seeded
// by the caller and used for every random draw.
func New(cfg Config, surface hal.Surface, buttons hal.Buttons, log hal.Logger, src rng.Source) *Game {
	view := cfg.view()
	g := &Game{
		cfg:     cfg,
		view:    view,
		surface: surface,
		buttons: buttons,
		log:     log,
		src:     src,
		sess: Session{
			PlayerSpeed: cfg.PlayerSpeed,
			Cannon:      cannon.New(cfg.FiringTicks, cfg.CooldownTicks),
			Crosshair:   crosshair.New(cfg.Width, cfg.Height, cfg.CrosshairStep),
		},
		stars: starfield.New(view),
		ties:  tie.NewPool(cfg.TieCount, view, &wiregl.TieFighter, cfg.TieMotion, src),
		fx:    explosion.NewPool(cfg.ExplosionCount, view, cfg.ExplosionLifetime, cfg.Shrapnel, src),
	}
	g.stars.Init(cfg.StarCount, src)
	g.ties.SpawnAll()
	return g
}

// WithSeed records the seed for the session log.
func (g *Game) WithSeed(seed uint32) *Game {
	g.sess.Seed = seed
	g.logf("tiestrike: session seed=0x%08x", seed)
	return g
}

// Session returns the live session state.
func (g *Game) Session() *Session { return &g.sess }

// Stars, Ties and Explosions expose the pools.
func (g *Game) Stars() *starfield.Field     { return g.stars }
func (g *Game) Ties() *tie.Pool             { return g.ties }
func (g *Game) Explosions() *explosion.Pool { return g.fx }

// Frame runs one frame: input, physics, render with collision, then the
// game-state transition. Once the game is over it only shows the final card.
func (g *Game) Frame() {
	if g.sess.State == Over {
		g.showGameOver()
		return
	}
	g.sess.Frames++

	g.input()
	g.physics()
	g.render()
	g.transition()
}

func (g *Game) input() {
	ch := g.sess.Crosshair
	ch.Update(g.buttons)

	if g.pressed(hal.ButtonSpeedUp) {
		g.sess.PlayerSpeed++
	}
	if g.pressed(hal.ButtonSpeedDown) {
		g.sess.PlayerSpeed--
	}

	g.sess.Cannon.Update(g.pressed(hal.ButtonFire), ch.Screen())
}

func (g *Game) physics() {
	g.stars.Move(wiregl.Scalar(g.sess.PlayerSpeed))

	if n := g.ties.Update(); n > 0 {
		g.sess.Misses += n
		g.logf("tiestrike: miss misses=%d", g.sess.Misses)
	}

	g.fx.Update()
}

func (g *Game) render() {
	s := g.surface
	s.FillScreen(background)

	g.stars.Draw(s)

	shot := tie.Shot{Firing: g.sess.Cannon.Firing(), Target: g.sess.Cannon.Target()}
	g.ties.Render(s, shot, g.kill)

	g.fx.Render(s)
	g.sess.Cannon.DrawBeam(s, g.src)
	g.sess.Crosshair.Draw(s, crosshairTint)

	hud.Draw(s, g.stats())
}

func (g *Game) kill(k tie.Kill) {
	if _, ok := g.fx.Trigger(g.ties.Model(), k.Tie.Pos, k.Tie.Vel); !ok {
		g.logf("tiestrike: explosion pool full, effect dropped")
	}
	g.sess.Score += int(k.Tie.Pos.Z)
	g.sess.Hits++
	g.logf("tiestrike: hit slot=%d depth=%d score=%d", k.Slot, int(k.Tie.Pos.Z), g.sess.Score)
}

func (g *Game) transition() {
	if g.sess.State == Running && g.sess.Misses > g.cfg.MissLimit {
		g.sess.State = Over
		g.logf("tiestrike: game over score=%d hits=%d misses=%d frames=%d",
			g.sess.Score, g.sess.Hits, g.sess.Misses, g.sess.Frames)
	}
}

func (g *Game) showGameOver() {
	if g.overShown {
		return
	}
	g.overShown = true
	g.surface.FillScreen(background)
	hud.DrawGameOver(g.surface, g.stats())
}

func (g *Game) stats() hud.Stats {
	return hud.Stats{
		Score:     g.sess.Score,
		Hits:      g.sess.Hits,
		Misses:    g.sess.Misses,
		MissLimit: g.cfg.MissLimit,
		Speed:     g.sess.PlayerSpeed,
	}
}

func (g *Game) pressed(b hal.Button) bool {
	return g.buttons != nil && g.buttons.IsPressed(b)
}

func (g *Game) logf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.WriteLineString(fmt.Sprintf(format, args...))
}
