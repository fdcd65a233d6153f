//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeyboard drives the virtual button pins from held keys.
type hostKeyboard struct {
	pins [ButtonCount]*virtualPin
}

func newHostKeyboard(pins [ButtonCount]*virtualPin) *hostKeyboard {
	return &hostKeyboard{pins: pins}
}

var hostKeymap = [ButtonCount][]ebiten.Key{
	ButtonRight:     {ebiten.KeyArrowRight, ebiten.KeyD},
	ButtonLeft:      {ebiten.KeyArrowLeft, ebiten.KeyA},
	ButtonUp:        {ebiten.KeyArrowUp, ebiten.KeyW},
	ButtonDown:      {ebiten.KeyArrowDown, ebiten.KeyS},
	ButtonFire:      {ebiten.KeySpace, ebiten.KeyEnter},
	ButtonSpeedUp:   {ebiten.KeyE, ebiten.KeyPageUp},
	ButtonSpeedDown: {ebiten.KeyQ, ebiten.KeyPageDown},
}

func (k *hostKeyboard) poll() {
	for i, keys := range hostKeymap {
		p := k.pins[i]
		if p == nil {
			continue
		}
		pressed := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				pressed = true
				break
			}
		}
		if pressed {
			// Active-low: a pressed button pulls the pin to ground.
			p.drive(false)
		} else {
			p.release()
		}
	}
}
