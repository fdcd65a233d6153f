// Package hud draws the text overlay: the score line while playing and the
// terminal game-over card.
package hud

import (
	"fmt"
	"image/color"

	"tiestrike/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// LineHeight is the pixel advance between text lines.
const LineHeight = 7

var font tinyfont.Fonter = &tinyfont.TomThumb

var (
	textColor  = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	warnColor  = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	alertColor = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
)

// Stats is the session summary shown on screen.
type Stats struct {
	Score     int
	Hits      int
	Misses    int
	MissLimit int
	Speed     int
}

// Draw writes the in-game status line along the top edge.
func Draw(s hal.Surface, st Stats) {
	d := displayer{s: s}
	tinyfont.WriteLine(d, font, 1, LineHeight-1, fmt.Sprintf("%06d", st.Score), textColor)

	w, _ := s.Size()
	speed := fmt.Sprintf("V%d", st.Speed)
	_, outbox := tinyfont.LineWidth(font, speed)
	tinyfont.WriteLine(d, font, int16(w/2)-int16(outbox/2), LineHeight-1, speed, textColor)

	c := textColor
	if st.MissLimit > 0 && st.Misses*2 >= st.MissLimit {
		c = warnColor
	}
	miss := fmt.Sprintf("M%d/%d", st.Misses, st.MissLimit)
	_, outbox = tinyfont.LineWidth(font, miss)
	tinyfont.WriteLine(d, font, int16(w)-int16(outbox)-1, LineHeight-1, miss, c)
}

// DrawGameOver writes the final card centered on the screen.
func DrawGameOver(s hal.Surface, st Stats) {
	w, h := s.Size()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("SCORE %d", st.Score),
		fmt.Sprintf("HITS %d  MISSES %d", st.Hits, st.Misses),
	}
	y := h/2 - len(lines)*LineHeight/2
	for i, line := range lines {
		c := textColor
		if i == 0 {
			c = alertColor
		}
		_, outbox := tinyfont.LineWidth(font, line)
		x := (w - int(outbox)) / 2
		if x < 0 {
			x = 0
		}
		y += LineHeight
		tinyfont.WriteLine(displayer{s: s}, font, int16(x), int16(y), line, c)
	}
}

// DrawLines writes lines top-down from (x, y), stopping at the bottom edge.
func DrawLines(s hal.Surface, x, y int, lines []string, c color.RGBA) {
	_, h := s.Size()
	d := displayer{s: s}
	for _, line := range lines {
		y += LineHeight
		if y > h {
			return
		}
		tinyfont.WriteLine(d, font, int16(x), int16(y), line, c)
	}
}

// displayer adapts a Surface to the tinyfont drawing target.
type displayer struct {
	s hal.Surface
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (x, y int16) {
	if d.s == nil {
		return 0, 0
	}
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.s == nil {
		return
	}
	d.s.DrawPixel(int(x), int(y), rgb565From888(c.R, c.G, c.B))
}

func (d displayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
