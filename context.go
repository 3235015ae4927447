package fbdraw

import (
	"fmt"
	"math"
)

// StackCapacity is the number of contexts an Engine can hold, including
// the root context.
const StackCapacity = 32

// MinFontSize is the smallest font size SetFont stores.
const MinFontSize = 0.1

// Context is the drawing state used by every primitive: a pixel offset,
// a colour, a font selection and the canvas being drawn into.
type Context struct {
	// X and Y are the pixel offset added to every position.
	X, Y int

	// R, G, B and A are the current colour.
	R, G, B, A uint8

	// FontPath is the font file used by RenderText. Empty means unset.
	FontPath string

	// FontSize scales the font; one unit is 24 points.
	FontSize float64

	// Target is the canvas primitives draw into. It is not owned.
	Target *Canvas
}

// Pixel returns the context colour as a packed pixel.
func (c Context) Pixel() uint32 {
	return Pack(c.R, c.G, c.B, c.A)
}

// Current returns a copy of the top context.
func (e *Engine) Current() Context {
	return e.stack[e.top]
}

// Depth returns the number of contexts on the stack, at least 1.
func (e *Engine) Depth() int {
	return e.top + 1
}

func (e *Engine) ctx() *Context {
	return &e.stack[e.top]
}

// Push duplicates the current context and makes the copy current.
// A non-nil target replaces the copy's target and resets its offset to
// (0, 0); with nil the target and offset are inherited.
// Push fails with ErrStackOverflow when the stack is full and leaves it
// untouched.
func (e *Engine) Push(target *Canvas) error {
	if e.top >= StackCapacity-1 {
		return fmt.Errorf("fbdraw: push at depth %d: %w", e.Depth(), ErrStackOverflow)
	}
	next := e.stack[e.top]
	if target != nil {
		next.Target = target
		next.X = 0
		next.Y = 0
	}
	e.top++
	e.stack[e.top] = next
	return nil
}

// Pop discards the current context. Popping the root context is a no-op.
func (e *Engine) Pop() {
	if e.top == 0 {
		return
	}
	e.stack[e.top] = Context{}
	e.top--
}

// With pushes target (see Push), calls fn and pops again. The pop also runs
// when fn returns an error or panics.
func (e *Engine) With(target *Canvas, fn func() error) error {
	if err := e.Push(target); err != nil {
		return err
	}
	defer e.Pop()
	return fn()
}

// Translate moves the current offset by dx and dy, given as fractions of
// the target canvas. Each step is truncated to whole pixels before it is
// added, and offsets accumulate until a Push resets them.
func (e *Engine) Translate(dx, dy float64) {
	c := e.ctx()
	c.X += truncInt(dx * float64(c.Target.width))
	c.Y += truncInt(dy * float64(c.Target.height))
}

// SetColor sets the current colour. Components in [0, 1] are scaled to
// bytes by truncating c·255.
func (e *Engine) SetColor(r, g, b, a float64) {
	c := e.ctx()
	c.R = ScaleComponent(r)
	c.G = ScaleComponent(g)
	c.B = ScaleComponent(b)
	c.A = ScaleComponent(a)
}

// SetFont selects the font file and size used by RenderText. Sizes below
// MinFontSize are raised to it.
func (e *Engine) SetFont(path string, size float64) {
	c := e.ctx()
	c.FontPath = path
	c.FontSize = max(MinFontSize, size)
}

// truncInt converts v to int, truncating toward zero. NaN maps to 0 and
// values outside the int32 range saturate.
func truncInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
