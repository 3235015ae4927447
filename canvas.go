package fbdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// MaxCanvasPixels bounds the backing storage of a single canvas.
const MaxCanvasPixels = 1 << 28

// Canvas is a rectangular buffer of packed pixels (see [Pack]).
// A canvas with zero width or height is valid and still holds one pixel of
// storage.
type Canvas struct {
	width  int
	height int
	pix    []uint32
}

// NewCanvas allocates a zero-initialised (transparent black) canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("fbdraw: canvas %dx%d: %w", width, height, ErrInvalidArgument)
	}
	n, ok := backingLen(width, height)
	if !ok {
		return nil, fmt.Errorf("fbdraw: canvas %dx%d: %w", width, height, ErrAllocation)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, n),
	}, nil
}

func backingLen(width, height int) (int, bool) {
	w, h := max(1, width), max(1, height)
	if w > math.MaxInt/h {
		return 0, false
	}
	n := w * h
	return n, n <= MaxCanvasPixels
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the backing storage. Pixel (x, y) is at index x + y*Width().
func (c *Canvas) Pix() []uint32 {
	return c.pix
}

// Pixel returns the packed pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) Pixel(x, y int) uint32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[x+y*c.width]
}

// SetPixel stores p at (x, y). Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, p uint32) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[x+y*c.width] = p
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return Color(c.Pixel(x, y))
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for y := 0; y < c.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < c.width; x++ {
			r, g, b, a := Unpack(c.pix[x+y*c.width])
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = a
		}
	}
	return img
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
