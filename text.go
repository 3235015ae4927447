package fbdraw

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbdraw/text"
)

// charSizeUnits converts a font size to a 26.6 character size: one unit of
// font size is 24 points and a point is 64 sub-units.
const charSizeUnits = 24 * 64

// RenderText renders s with the current font and colour into a new canvas
// and returns it. The caller owns the result.
//
// s is treated as a sequence of single-byte code units; byte b selects the
// glyph for code point b (ISO 8859-1). The canvas is as wide as the sum of
// the glyph advances and as tall as the face's line height, with glyphs
// sitting on a common baseline. An empty string yields a zero-width canvas.
func (e *Engine) RenderText(s string) (*Canvas, error) {
	cur := e.ctx()
	if cur.FontPath == "" {
		return nil, &FontError{Op: "open", Path: cur.FontPath, Err: fmt.Errorf("no font selected: %w", ErrInvalidArgument)}
	}

	size := fixed.Int26_6(cur.FontSize * charSizeUnits)
	face, err := e.fonts.Open(cur.FontPath, size)
	if err != nil {
		op := "open"
		if errors.Is(err, text.ErrInvalidSize) {
			op = "size"
		}
		return nil, &FontError{Op: op, Path: cur.FontPath, Err: err}
	}
	defer func() {
		_ = face.Close()
	}()

	metrics := face.Metrics()
	totalWidth := 0
	for i := 0; i < len(s); i++ {
		totalWidth += face.Glyph(s[i]).Advance
	}
	totalHeight := metrics.LineHeight

	out, err := NewCanvas(totalWidth, totalHeight)
	if err != nil {
		return nil, err
	}

	baseline := totalHeight + metrics.Descender
	err = e.With(out, func() error {
		offset := 0
		for i := 0; i < len(s); i++ {
			g := face.Glyph(s[i])

			descent := max(0, g.Height-g.Top)
			ascent := max(0, max(g.Top, g.Height)-descent)

			gc, err := e.glyphCanvas(g)
			if err != nil {
				return err
			}
			x := fraction(offset+g.Left, totalWidth)
			y := fraction(baseline-ascent, totalHeight)
			if err := e.Blit(x, y, gc); err != nil {
				return err
			}

			offset += g.Advance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("fbdraw: text rendered",
		"font", cur.FontPath, "size", cur.FontSize, "bytes", len(s),
		"width", totalWidth, "height", totalHeight)
	return out, nil
}

// glyphCanvas builds a canvas from a glyph's coverage, coloured with the
// current context colour.
func (e *Engine) glyphCanvas(g text.Glyph) (*Canvas, error) {
	gc, err := NewCanvas(g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	c := e.ctx()
	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			gc.pix[i+j*g.Width] = Pack(c.R, c.G, c.B, g.Coverage[i+j*g.Width])
		}
	}
	return gc, nil
}

// fraction returns n/d, or 0 when d is 0.
func fraction(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
