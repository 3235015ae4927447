package fbdraw

import "errors"

// Sentinel errors for the fbdraw package.
var (
	// ErrAllocation is returned when a canvas cannot be allocated.
	ErrAllocation = errors.New("fbdraw: canvas allocation failed")

	// ErrStackOverflow is returned when a push would exceed StackCapacity.
	ErrStackOverflow = errors.New("fbdraw: context stack overflow")

	// ErrInvalidArgument is returned when a caller passes an unusable argument.
	ErrInvalidArgument = errors.New("fbdraw: invalid argument")

	// ErrFont is matched by every *FontError.
	ErrFont = errors.New("fbdraw: font error")

	// ErrDevice is returned when a render would write outside the device buffer.
	ErrDevice = errors.New("fbdraw: device buffer out of range")

	// ErrNoDevice is returned by device-relative operations on an engine
	// created without WithDevice.
	ErrNoDevice = errors.New("fbdraw: no device attached")
)

// FontError is returned when a font face cannot be opened or sized.
type FontError struct {
	Op   string // "open" or "size"
	Path string
	Err  error
}

func (e *FontError) Error() string {
	if e.Err == nil {
		return "fbdraw: font " + e.Op + " " + e.Path
	}
	return "fbdraw: font " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFont.
func (e *FontError) Is(target error) bool { return target == ErrFont }

// IsFatal reports whether err belongs to a class a script host should treat
// as non-recoverable: allocation, stack overflow, font and device errors.
// Invalid arguments are recoverable.
func IsFatal(err error) bool {
	switch {
	case errors.Is(err, ErrAllocation),
		errors.Is(err, ErrStackOverflow),
		errors.Is(err, ErrFont),
		errors.Is(err, ErrDevice):
		return true
	}
	return false
}
