package fbdraw

import (
	"encoding/binary"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the size of one packed pixel in a device buffer.
const BytesPerPixel = 4

// DeviceBuffer describes a writable 32 bpp display buffer: its visible
// resolution, the row stride in bytes (which may include padding), the pan
// offsets of the visible area and the backing bytes.
type DeviceBuffer struct {
	Width   int // visible pixels per row
	Height  int // visible rows
	Stride  int // bytes between the starts of consecutive rows
	XOffset int // horizontal pan in pixels
	YOffset int // vertical pan in rows
	Data    []byte
}

// NewDeviceBuffer allocates an in-memory device buffer with no padding and
// no pan, for headless rendering.
func NewDeviceBuffer(width, height int) *DeviceBuffer {
	width, height = max(width, 0), max(height, 0)
	return &DeviceBuffer{
		Width:  width,
		Height: height,
		Stride: width * BytesPerPixel,
		Data:   make([]byte, width*height*BytesPerPixel),
	}
}

// Render copies src into dst row by row without blending.
//
// Row j of src, for j < min(src.Height(), dst.Height), is written at byte
// offset XOffset*4 + (j+YOffset)*Stride; each row copies
// min(src.Width()*4, Stride) bytes. Rows below the device are dropped.
// If the copy would reach outside dst.Data, Render writes nothing and
// returns ErrDevice.
func Render(dst *DeviceBuffer, src *Canvas) error {
	if dst == nil || src == nil {
		return fmt.Errorf("fbdraw: render: %w", ErrInvalidArgument)
	}

	rows := min(src.height, dst.Height)
	n := min(src.width*BytesPerPixel, dst.Stride)
	if rows <= 0 || n <= 0 {
		return nil
	}

	base := dst.XOffset * BytesPerPixel
	first := base + dst.YOffset*dst.Stride
	last := base + (rows-1+dst.YOffset)*dst.Stride + n
	if first < 0 || last > len(dst.Data) {
		return fmt.Errorf("fbdraw: render %dx%d rows [%d, %d) of %d bytes: %w",
			src.width, src.height, first, last, len(dst.Data), ErrDevice)
	}

	if src.height > dst.Height || src.width*BytesPerPixel > dst.Stride {
		Logger().Warn("fbdraw: render clipped",
			"canvas_width", src.width, "canvas_height", src.height,
			"device_width", dst.Width, "device_height", dst.Height)
	}

	var tail [BytesPerPixel]byte
	for j := 0; j < rows; j++ {
		off := base + (j+dst.YOffset)*dst.Stride
		row := dst.Data[off : off+n]
		pix := src.pix[j*src.width:]
		whole := n / BytesPerPixel
		for i := 0; i < whole; i++ {
			binary.LittleEndian.PutUint32(row[i*BytesPerPixel:], pix[i])
		}
		if rem := n % BytesPerPixel; rem != 0 {
			binary.LittleEndian.PutUint32(tail[:], pix[whole])
			copy(row[whole*BytesPerPixel:], tail[:rem])
		}
	}
	return nil
}

// Pixel returns the packed pixel at visible position (x, y), honouring the
// pan offsets, or 0 outside the buffer.
func (d *DeviceBuffer) Pixel(x, y int) uint32 {
	off := (d.XOffset+x)*BytesPerPixel + (d.YOffset+y)*d.Stride
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height || off < 0 || off+BytesPerPixel > len(d.Data) {
		return 0
	}
	return binary.LittleEndian.Uint32(d.Data[off:])
}

// Image returns a copy of the visible area as an image.NRGBA.
func (d *DeviceBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			img.SetNRGBA(x, y, Color(d.Pixel(x, y)))
		}
	}
	return img
}

// Snapshot returns the visible area scaled by an integer factor using
// nearest-neighbour sampling. Factors below 1 are treated as 1.
func (d *DeviceBuffer) Snapshot(scale int) *image.NRGBA {
	img := d.Image()
	if scale <= 1 {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, d.Width*scale, d.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
