package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Description summarises one face of a font file.
type Description struct {
	Family  string
	Italic  bool
	Weight  float32 // 400 is regular, 700 bold
	Stretch float32 // 1 is normal width
	Upem    uint16  // design units per em
}

// Describe reads the family and style of every face in a font file or
// collection.
func Describe(data []byte) ([]Description, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to describe font: %w", err)
	}

	out := make([]Description, 0, len(faces))
	for _, f := range faces {
		d := f.Describe()
		out = append(out, Description{
			Family:  d.Family,
			Italic:  d.Aspect.Style == font.StyleItalic,
			Weight:  float32(d.Aspect.Weight),
			Stretch: float32(d.Aspect.Stretch),
			Upem:    f.Upem(),
		})
	}
	return out, nil
}

// Describe describes the source's font data.
func (s *FontSource) Describe() ([]Description, error) {
	return Describe(s.Data())
}
