package tetris

// Color is a 24-bit display color. Frontends convert it to their own color type.
type Color struct {
	R, G, B uint8
}

var (
	Cyan    = Color{0, 255, 255}
	Yellow  = Color{255, 255, 0}
	Magenta = Color{255, 0, 255}
	Green   = Color{0, 255, 0}
	Red     = Color{255, 0, 0}
	Blue    = Color{0, 0, 255}
	Orange  = Color{255, 165, 0}
)

// Hex returns the color as a 0xRRGGBB integer.
func (c Color) Hex() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}
