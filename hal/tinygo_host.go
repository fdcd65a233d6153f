//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
	"time"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	fb      *hostFramebuffer
	buttons *pinButtons
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. Buttons are unconnected pull-ups and always read released.
func New() HAL {
	l := &tinyGoHostLogger{}

	var pins [ButtonCount]GPIOPin
	for i := range pins {
		pins[i] = newVirtualPin(fmt.Sprintf("GP%d", i+2), GPIOCapInput|GPIOCapPullUp)
	}
	buttons, err := newPinButtons(pins)
	if err != nil {
		panic(err)
	}
	l.WriteLineString(fmt.Sprintf("hal: tinygo/%s host, no input", runtime.GOOS))

	return &tinyGoHostHAL{
		logger:  l,
		fb:      newHostFramebuffer(128, 160),
		buttons: buttons,
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Surface() Surface { return h.fb }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.buttons }
func (h *tinyGoHostHAL) Entropy() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n) ^ uint32(n>>32)
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
