package text

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeByte returns the code point selected by the single-byte code unit b.
func DecodeByte(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(b)
}

// EncodeLatin1 converts UTF-8 text into single-byte code units, one byte
// per rune. It fails with *NotLatin1Error on the first rune ISO 8859-1
// cannot represent; invalid UTF-8 decodes to U+FFFD and fails the same way.
func EncodeLatin1(s string) (string, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return "", &NotLatin1Error{Offset: i, Rune: r}
		}
		out = append(out, b)
	}
	return string(out), nil
}
