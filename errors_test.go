package fbdraw

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestFontError(t *testing.T) {
	err := &FontError{Op: "open", Path: "a.ttf", Err: fs.ErrNotExist}
	if got, want := err.Error(), "fbdraw: font open a.ttf: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	wrapped := fmt.Errorf("scene: %w", err)
	if !errors.Is(wrapped, ErrFont) {
		t.Error("errors.Is(wrapped, ErrFont) = false")
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("errors.Is(wrapped, fs.ErrNotExist) = false")
	}

	bare := &FontError{Op: "size", Path: "b.ttf"}
	if got, want := bare.Error(), "fbdraw: font size b.ttf"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrAllocation, true},
		{fmt.Errorf("x: %w", ErrStackOverflow), true},
		{&FontError{Op: "open"}, true},
		{ErrDevice, true},
		{ErrInvalidArgument, false},
		{ErrNoDevice, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsFatal(tt.err); got != tt.want {
			t.Errorf("IsFatal(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
