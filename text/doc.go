// Package text is the font collaborator of fbdraw.
//
// It turns a font file and a character size into per-glyph metrics and
// 8-bit coverage bitmaps:
//
//   - FontSource: a parsed font file, shared and cached by path
//   - Face: a font instance at one size (x/image opentype backend)
//   - FileLoader: opens faces by path, caching sources in an LRU Cache
//
// Glyphs are addressed by single-byte code units. A byte maps to the
// ISO 8859-1 code point of the same value; EncodeLatin1 converts UTF-8
// input into that form.
//
// # Example usage
//
//	loader := text.NewFileLoader()
//	face, err := loader.Open("DejaVuSans.ttf", fixed.I(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	g := face.Glyph('A')
//	fmt.Println(g.Advance, g.Width, g.Height, g.Top, g.Left)
package text
