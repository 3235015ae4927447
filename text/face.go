package text

// Face is a font instance at a fixed size.
// A Face is not safe for concurrent use.
type Face interface {
	// Metrics returns the face-level metrics.
	Metrics() Metrics

	// Glyph renders the glyph for the single-byte code unit b.
	// Glyphs the face cannot render come back empty.
	Glyph(b byte) Glyph

	// Close releases the face.
	Close() error
}
