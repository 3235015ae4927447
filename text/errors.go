package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face cannot be created at the
	// requested size, including sizes <= 0.
	ErrInvalidSize = errors.New("text: invalid character size")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("text: font source closed")
)

// NotLatin1Error is returned by EncodeLatin1 for a rune outside ISO 8859-1.
type NotLatin1Error struct {
	Offset int  // byte offset in the input
	Rune   rune // the offending rune
}

func (e *NotLatin1Error) Error() string {
	return "text: rune " + string(e.Rune) + " has no single-byte encoding"
}
