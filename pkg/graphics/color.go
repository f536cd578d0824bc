package graphics

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Lighten returns the color with each channel raised by amount (0-255),
// saturating at 255. Alpha is preserved. Used for hover states.
func (c Color) Lighten(amount uint8) Color {
	r := uint8(c >> 16)
	g := uint8(c >> 8)
	b := uint8(c)
	return RGBA(addSat(r, amount), addSat(g, amount), addSat(b, amount), uint8(c>>24))
}

func addSat(v, d uint8) uint8 {
	sum := uint16(v) + uint16(d)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
