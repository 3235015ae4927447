package fbdraw

import (
	"fmt"
	"math"
)

// span is a clipped run of pixels: columns [x0, x1) and rows [y0, y1) of
// the target, starting at column sx and row sy of the source.
type span struct {
	x0, x1, y0, y1 int
	sx, sy         int
}

func (s span) empty() bool {
	return s.x0 >= s.x1 || s.y0 >= s.y1
}

// clipRect clips a w×h rectangle placed at (x, y) to a cw×ch canvas.
// w and h are already limited to the space right of and below (x, y);
// negative sizes yield an empty span.
func clipRect(x, y, w, h, cw, ch int) span {
	s := span{
		x0: max(x, 0),
		y0: max(y, 0),
		x1: min(x+max(w, 0), cw),
		y1: min(y+max(h, 0), ch),
	}
	s.sx = s.x0 - x
	s.sy = s.y0 - y
	return s
}

// Box fills a rectangle with the current colour. x, y, w and h are
// fractions of the target canvas; the position is relative to the current
// offset. An opaque colour overwrites the covered pixels, any other alpha
// blends into them.
func (e *Engine) Box(x, y, w, h float64) error {
	return e.With(nil, func() error {
		e.Translate(x, y)
		c := e.ctx()
		t := c.Target

		wp := truncInt(math.Min(w*float64(t.width), float64(t.width-c.X)))
		hp := truncInt(math.Min(h*float64(t.height), float64(t.height-c.Y)))
		s := clipRect(c.X, c.Y, wp, hp, t.width, t.height)
		if s.empty() {
			return nil
		}

		p := c.Pixel()
		for j := s.y0; j < s.y1; j++ {
			row := t.pix[s.x0+j*t.width : s.x1+j*t.width]
			if c.A == 255 {
				fill(row, p)
			} else {
				blendFill(row, p)
			}
		}
		return nil
	})
}

// Blit blends src into the target canvas with its top-left corner at
// (x, y), given as fractions of the target canvas relative to the current
// offset. Every covered pixel goes through Blend, whatever the source alpha.
func (e *Engine) Blit(x, y float64, src *Canvas) error {
	if src == nil {
		return fmt.Errorf("fbdraw: blit of nil canvas: %w", ErrInvalidArgument)
	}
	return e.With(nil, func() error {
		e.Translate(x, y)
		c := e.ctx()
		t := c.Target

		wp := min(src.width, t.width-c.X)
		hp := min(src.height, t.height-c.Y)
		s := clipRect(c.X, c.Y, wp, hp, t.width, t.height)
		if s.empty() {
			return nil
		}

		n := s.x1 - s.x0
		for j := s.y0; j < s.y1; j++ {
			dst := t.pix[s.x0+j*t.width : s.x1+j*t.width]
			so := s.sx + (s.sy+j-s.y0)*src.width
			blendRow(dst, src.pix[so:so+n])
		}
		return nil
	})
}

// Clear overwrites every pixel of the target canvas with the given colour,
// ignoring the offset and the existing contents. The current colour is left
// unchanged.
func (e *Engine) Clear(r, g, b, a float64) error {
	return e.With(nil, func() error {
		e.SetColor(r, g, b, a)
		c := e.ctx()
		t := c.Target
		fill(t.pix[:t.width*t.height], c.Pixel())
		return nil
	})
}
