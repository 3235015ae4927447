package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ximageFace implements Face using a golang.org/x/image/font/opentype face.
type ximageFace struct {
	face font.Face
}

// Metrics implements Face.Metrics.
// Values are truncated toward zero; x/image reports the descent as a
// positive distance, Metrics stores it negated.
func (f *ximageFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		LineHeight: fixedToInt(m.Height),
		Descender:  -fixedToInt(m.Descent),
	}
}

// Glyph implements Face.Glyph.
func (f *ximageFace) Glyph(b byte) Glyph {
	r := DecodeByte(b)

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		logger().Warn("text: glyph not rendered", "byte", b, "rune", r)
		return Glyph{}
	}

	g := Glyph{
		Advance: fixedToInt(advance),
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		Top:     -dr.Min.Y,
		Left:    dr.Min.X,
	}
	if bounds, _, ok := f.face.GlyphBounds(r); ok {
		g.Left = fixedToInt(bounds.Min.X)
	}
	g.Coverage = coverage(mask, maskp, g.Width, g.Height)
	return g
}

// Close implements Face.Close.
func (f *ximageFace) Close() error {
	return f.face.Close()
}

// coverage copies a w×h region of mask starting at mp into a new slice.
// The opentype face reuses its mask between calls, so it cannot be kept.
func coverage(mask image.Image, mp image.Point, w, h int) []uint8 {
	out := make([]uint8, w*h)
	if w == 0 || h == 0 {
		return out
	}
	if a, ok := mask.(*image.Alpha); ok {
		for j := 0; j < h; j++ {
			src := a.Pix[a.PixOffset(mp.X, mp.Y+j):]
			copy(out[j*w:(j+1)*w], src[:w])
		}
		return out
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			_, _, _, ca := mask.At(mp.X+i, mp.Y+j).RGBA()
			out[i+j*w] = uint8(ca >> 8)
		}
	}
	return out
}

// fixedToInt converts a 26.6 value to whole pixels, truncating toward zero.
func fixedToInt(x fixed.Int26_6) int {
	return int(x) / 64
}
