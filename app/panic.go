package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tiestrike/hal"
	"tiestrike/strike/hud"
)

// panicCols is the wrap width of the panic card in TomThumb glyphs.
const panicCols = 31

// recoverFrame turns a frame panic into a logged, on-screen report and an
// error for the runner.
func recoverFrame(h hal.HAL, err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	reportPanic(h, v, stack)
	*err = fmt.Errorf("tiestrike: panic: %v", v)
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("TIE Strike Panic: panic=%v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	s := h.Surface()
	if s == nil {
		return
	}
	s.FillScreen(0xFFFF)

	lines := []string{
		"PANIC",
		fmt.Sprintf("%v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	var wrapped []string
	for _, line := range lines {
		for len(line) > 0 {
			chunk, rest := takeRunes(line, panicCols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	hud.DrawLines(s, 0, 0, wrapped, color.RGBA{A: 0xFF})
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
