package text

// Metrics holds face-level metrics in whole pixels.
type Metrics struct {
	// LineHeight is the recommended distance between baselines.
	LineHeight int

	// Descender is the distance from the baseline to the lowest point of
	// the face. It is zero or negative (below the baseline).
	Descender int
}

// Glyph is a rendered glyph.
//
// Coverage holds Width*Height bytes in row-major order; 0 is uncovered and
// 255 fully covered.
type Glyph struct {
	// Advance is the horizontal distance to the next glyph origin.
	Advance int

	// Width and Height are the bitmap dimensions.
	Width, Height int

	// Top is the distance from the baseline to the top bitmap row,
	// positive upward.
	Top int

	// Left is the horizontal bearing: the distance from the origin to the
	// left edge of the glyph.
	Left int

	Coverage []uint8
}
