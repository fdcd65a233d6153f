package game

import (
	"time"

	"tiestrike/strike/explosion"
	"tiestrike/strike/tie"
	"tiestrike/strike/wiregl"
)

// Config holds the build-time tuning of a session.
type Config struct {
	Width  int
	Height int

	StarCount      int
	TieCount       int
	ExplosionCount int

	Near         wiregl.Scalar
	Far          wiregl.Scalar
	ViewDistance wiregl.Scalar

	CrosshairStep int
	// MissLimit ends the game once misses exceed it.
	MissLimit int

	ExplosionLifetime int
	FiringTicks       int
	CooldownTicks     int

	// PlayerSpeed is the initial forward speed applied to the starfield.
	PlayerSpeed int

	TieMotion tie.Motion
	Shrapnel  explosion.Spread

	// FramePeriod is the minimum frame duration.
	FramePeriod time.Duration
}

// DefaultConfig is the tuning for the 128x160 ST7735 panel.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 160,

		StarCount:      40,
		TieCount:       3,
		ExplosionCount: 4,

		Near:         10,
		Far:          500,
		ViewDistance: 64,

		CrosshairStep: 2,
		MissLimit:     10,

		ExplosionLifetime: explosion.DefaultLifetime,
		FiringTicks:       4,
		CooldownTicks:     10,

		PlayerSpeed: 8,

		TieMotion: tie.Motion{Lateral: 1.5, MinInbound: 3, MaxInbound: 9},
		Shrapnel:  explosion.Spread{Lateral: 2, Depth: 1.5},

		FramePeriod: 30 * time.Millisecond,
	}
}

func (c Config) view() wiregl.View {
	return wiregl.View{
		W:            c.Width,
		H:            c.Height,
		Near:         c.Near,
		Far:          c.Far,
		ViewDistance: c.ViewDistance,
	}
}
