//go:build !tinygo && !cgo

package hal

type hostKeyboard struct {
	pins [ButtonCount]*virtualPin
}

func newHostKeyboard(pins [ButtonCount]*virtualPin) *hostKeyboard {
	return &hostKeyboard{pins: pins}
}

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
