package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource is a parsed font file. One FontSource creates faces at any
// number of sizes and is meant to be shared.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed *opentype.Font
	name   string
}

// NewFontSource parses font data (TTF or OTF). The data slice is copied
// internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s
	s.name = fontName(parsed)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "Unknown Font".
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font data. It must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Face creates a face at the given character size, in 26.6 fixed-point
// points at 72 dpi, so one point is one pixel.
func (s *FontSource) Face(size fixed.Int26_6) (Face, error) {
	s.copyCheck()
	if size <= 0 {
		return nil, fmt.Errorf("text: size %v: %w", size, ErrInvalidSize)
	}

	s.mu.RLock()
	parsed := s.parsed
	s.mu.RUnlock()
	if parsed == nil {
		return nil, ErrClosed
	}

	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size) / 64,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: size %v: %w: %w", size, ErrInvalidSize, err)
	}
	return &ximageFace{face: f}, nil
}

// Close releases the parsed font. Faces created earlier keep working;
// new faces cannot be created.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
