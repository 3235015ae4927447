package fbdraw

import (
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbdraw/text"
)

// FontLoader opens font faces for the text pipeline.
// size is the nominal character size in 26.6 fixed-point points at 72 dpi.
type FontLoader interface {
	Open(path string, size fixed.Int26_6) (text.Face, error)
}

// Engine owns a context stack and runs drawing operations against it.
//
// The root context targets the canvas passed to NewEngine and can never be
// popped. Engine is not safe for concurrent use; callers sharing one must
// serialise access themselves.
type Engine struct {
	stack  [StackCapacity]Context
	top    int
	device *DeviceBuffer
	fonts  FontLoader
}

// NewEngine creates an engine whose root context draws into root.
//
//	screen, _ := fbdraw.NewCanvas(dev.Width, dev.Height)
//	eng, err := fbdraw.NewEngine(screen, fbdraw.WithDevice(dev))
func NewEngine(root *Canvas, opts ...EngineOption) (*Engine, error) {
	if root == nil {
		return nil, fmt.Errorf("fbdraw: nil root canvas: %w", ErrInvalidArgument)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	fonts := options.fonts
	if fonts == nil {
		fonts = text.NewFileLoader()
	}

	e := &Engine{
		device: options.device,
		fonts:  fonts,
	}
	e.stack[0] = Context{
		FontSize: 1,
		Target:   root,
	}

	Logger().Debug("fbdraw: engine created",
		"width", root.width, "height", root.height, "device", e.device != nil)
	return e, nil
}

// Device returns the attached device buffer, or nil.
func (e *Engine) Device() *DeviceBuffer {
	return e.device
}

// AllocateCanvas allocates a canvas sized as fractions of the device
// resolution. Sizes are truncated to whole pixels.
func (e *Engine) AllocateCanvas(wf, hf float64) (*Canvas, error) {
	if e.device == nil {
		return nil, ErrNoDevice
	}
	return NewCanvas(truncInt(wf*float64(e.device.Width)), truncInt(hf*float64(e.device.Height)))
}

// CanvasWidthFraction returns the canvas width as a fraction of the device
// width.
func (e *Engine) CanvasWidthFraction(c *Canvas) (float64, error) {
	if e.device == nil {
		return 0, ErrNoDevice
	}
	if c == nil {
		return 0, fmt.Errorf("fbdraw: nil canvas: %w", ErrInvalidArgument)
	}
	return float64(c.width) / float64(e.device.Width), nil
}

// CanvasHeightFraction returns the canvas height as a fraction of the device
// height.
func (e *Engine) CanvasHeightFraction(c *Canvas) (float64, error) {
	if e.device == nil {
		return 0, ErrNoDevice
	}
	if c == nil {
		return 0, fmt.Errorf("fbdraw: nil canvas: %w", ErrInvalidArgument)
	}
	return float64(c.height) / float64(e.device.Height), nil
}

// Render copies c into the attached device buffer. See the package-level
// Render for the copy rules.
func (e *Engine) Render(c *Canvas) error {
	if e.device == nil {
		return ErrNoDevice
	}
	return Render(e.device, c)
}
