package app

import (
	"context"

	"tiestrike/hal"
	"tiestrike/internal/buildinfo"
	"tiestrike/strike/game"
	"tiestrike/strike/rng"
)

// Config selects per-run options. Game tuning is fixed at build time in
// game.DefaultConfig.
type Config struct {
	// Seed for the session RNG; zero asks the HAL for entropy.
	Seed uint32
}

// New builds a session with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds a session and returns its frame step. The step never
// fails except when a frame panics; the panic is shown on screen and returned.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	g := newGame(h, cfg)
	return func() (err error) {
		defer recoverFrame(h, &err)
		g.Frame()
		return nil
	}
}

// Run starts a session and blocks forever, pacing frames on the wall clock
// (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	p := game.NewPacer(game.DefaultConfig().FramePeriod)
	if err := p.Run(context.Background(), step); err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("tiestrike: halted: " + err.Error())
		}
	}
	select {}
}

func newGame(h hal.HAL, cfg Config) *game.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = h.Entropy()
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("tiestrike " + buildinfo.Short())
	}
	return game.New(
		game.DefaultConfig(),
		h.Surface(),
		h.Buttons(),
		h.Logger(),
		rng.NewXorshift32(seed),
	).WithSeed(seed)
}
