package wiregl

// Color is an RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Grey returns a neutral color of the given level.
func Grey(level uint8) Color { return Color{R: level, G: level, B: level} }

// RGB565 packs the color as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 {
	return uint16(c.B>>3) | uint16(c.G>>2)<<5 | uint16(c.R>>3)<<11
}

// Scale multiplies every channel by level/255.
func (c Color) Scale(level uint8) Color {
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * uint32(level)) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B)}
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
)

// DepthBrightness fades linearly from 255 at the camera to 0 at 8*far.
func DepthBrightness(z, far Scalar) uint8 {
	if far <= 0 {
		return 0xFF
	}
	b := 255 * (1 - z/(8*far))
	return uint8(Clamp(b, 0, 255))
}
