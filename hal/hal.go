package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Surface is the drawing capability the game renders into.
//
// Colors are RGB565 (rrrrrggggggbbbbb). Implementations clip out-of-bounds
// coordinates; callers may pass points outside the screen.
type Surface interface {
	Size() (w, h int)
	FillScreen(c uint16)
	DrawPixel(x, y int, c uint16)
	DrawLine(x0, y0, x1, y1 int, c uint16)
}

// Button identifies one of the digital game inputs.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonFire
	ButtonSpeedUp
	ButtonSpeedDown

	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonRight:
		return "RIGHT"
	case ButtonLeft:
		return "LEFT"
	case ButtonUp:
		return "UP"
	case ButtonDown:
		return "DOWN"
	case ButtonFire:
		return "FIRE"
	case ButtonSpeedUp:
		return "SPEEDUP"
	case ButtonSpeedDown:
		return "SPEEDDOWN"
	default:
		return "UNKNOWN"
	}
}

// Buttons reports the current state of the game inputs.
//
// Reads are synchronous polls with no debouncing; a held button reads as
// pressed on every call.
type Buttons interface {
	IsPressed(b Button) bool
}

// HAL provides the only contact point between the game and the outside world.
type HAL interface {
	Logger() Logger
	Surface() Surface
	Buttons() Buttons
	// Entropy returns a platform-specific seed for the session RNG.
	Entropy() uint32
}
