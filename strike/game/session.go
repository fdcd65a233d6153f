package game

import (
	"tiestrike/strike/cannon"
	"tiestrike/strike/crosshair"
)

// State is the game-level phase.
type State uint8

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Session is all mutable per-game state outside the pools. It is owned by one
// Game and touched only from the frame loop.
type Session struct {
	Seed   uint32
	Frames uint64

	Score  int
	Hits   int
	Misses int
	State  State

	// PlayerSpeed is the forward speed; the speed buttons change it by one
	// per frame held, without bounds.
	PlayerSpeed int

	Cannon    *cannon.Cannon
	Crosshair *crosshair.Crosshair
}
