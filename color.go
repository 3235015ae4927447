package fbdraw

import (
	"fmt"
	"image/color"
)

// Pack returns the packed pixel value A<<24 | R<<16 | G<<8 | B.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed pixel into its components.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// toByte truncates v toward zero and keeps the low eight bits, so values
// outside [0, 255] wrap instead of saturating.
func toByte(v float64) uint8 {
	return uint8(int64(v))
}

// ScaleComponent converts a colour component in [0, 1] to a byte by
// truncating c·255.
func ScaleComponent(c float64) uint8 {
	return toByte(c * 255)
}

// RGBA is a colour with float components, nominally in [0, 1].
// It is the form colours take before they are stored in a Context.
type RGBA struct {
	R, G, B, A float64
}

// Pixel packs the colour using the same truncation as [Engine.SetColor].
func (c RGBA) Pixel() uint32 {
	return Pack(ScaleComponent(c.R), ScaleComponent(c.G), ScaleComponent(c.B), ScaleComponent(c.A))
}

// Color converts the packed pixel p to a color.NRGBA.
func Color(p uint32) color.NRGBA {
	r, g, b, a := Unpack(p)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the leading
// '#' is optional). Alpha defaults to 1.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("fbdraw: invalid hex colour %q: %w", hex, ErrInvalidArgument)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
