//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger  *uartLogger
	surface Surface
	buttons Buttons
}

// New returns a Raspberry Pi Pico HAL driving a 128x160 ST7735 panel on SPI0.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Buttons: GP2..GP8 (right, left, up, down, fire, speed up, speed down), active low.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var surface Surface
	if s, err := newST7735Surface(); err == nil {
		surface = s
	} else {
		logger.WriteLineString("display: " + err.Error())
		surface = &stubSurface{w: 128, h: 160}
	}

	pins := [ButtonCount]GPIOPin{
		ButtonRight:     &machinePin{name: "GP2", pin: machine.GP2},
		ButtonLeft:      &machinePin{name: "GP3", pin: machine.GP3},
		ButtonUp:        &machinePin{name: "GP4", pin: machine.GP4},
		ButtonDown:      &machinePin{name: "GP5", pin: machine.GP5},
		ButtonFire:      &machinePin{name: "GP6", pin: machine.GP6},
		ButtonSpeedUp:   &machinePin{name: "GP7", pin: machine.GP7},
		ButtonSpeedDown: &machinePin{name: "GP8", pin: machine.GP8},
	}
	var buttons Buttons
	if b, err := newPinButtons(pins); err == nil {
		buttons = b
	} else {
		logger.WriteLineString(err.Error())
		buttons = &pinButtons{}
	}

	return &tinyGoHAL{
		logger:  logger,
		surface: surface,
		buttons: buttons,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Surface() Surface { return h.surface }
func (h *tinyGoHAL) Buttons() Buttons { return h.buttons }

func (h *tinyGoHAL) Entropy() uint32 {
	v, err := machine.GetRNG()
	if err != nil {
		return 0x12345678
	}
	return v
}
