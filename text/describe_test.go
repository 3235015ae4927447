package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		italic bool
		bold   bool
	}{
		{"regular", goregular.TTF, false, false},
		{"bold", gobold.TTF, false, true},
		{"italic", goitalic.TTF, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs, err := Describe(tt.data)
			if err != nil {
				t.Fatalf("Describe() error = %v", err)
			}
			if len(descs) != 1 {
				t.Fatalf("Describe() returned %d faces, want 1", len(descs))
			}
			d := descs[0]
			if d.Family != "Go" {
				t.Errorf("Family = %q, want Go", d.Family)
			}
			if d.Italic != tt.italic {
				t.Errorf("Italic = %v, want %v", d.Italic, tt.italic)
			}
			if bold := d.Weight >= 600; bold != tt.bold {
				t.Errorf("Weight = %v, bold = %v, want %v", d.Weight, bold, tt.bold)
			}
			if d.Upem == 0 {
				t.Error("Upem = 0")
			}
		})
	}
}

func TestDescribeErrors(t *testing.T) {
	if _, err := Describe(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Describe(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := Describe([]byte("garbage")); err == nil {
		t.Error("Describe(garbage) error = nil")
	}
}

func TestFontSourceDescribe(t *testing.T) {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	descs, err := s.Describe()
	if err != nil || len(descs) != 1 || descs[0].Family != "Go" {
		t.Errorf("Describe() = %+v, %v", descs, err)
	}
}
