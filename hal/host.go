//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	buttons *pinButtons
}

// New returns a host HAL implementation with a 128x160 framebuffer.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}

	var pins [ButtonCount]GPIOPin
	var vpins [ButtonCount]*virtualPin
	for i := range vpins {
		vpins[i] = newVirtualPin(fmt.Sprintf("GP%d", i+2), GPIOCapInput|GPIOCapPullUp)
		pins[i] = vpins[i]
	}
	buttons, err := newPinButtons(pins)
	if err != nil {
		// Virtual pins always accept input+pull-up.
		panic(err)
	}

	return &hostHAL{
		logger:  logger,
		fb:      newHostFramebuffer(128, 160),
		kbd:     newHostKeyboard(vpins),
		buttons: buttons,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Surface() Surface { return h.fb }
func (h *hostHAL) Buttons() Buttons { return h.buttons }
func (h *hostHAL) Entropy() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n) ^ uint32(n>>32)
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
