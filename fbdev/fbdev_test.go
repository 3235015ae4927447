// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbdev

import (
	"errors"
	"testing"

	"github.com/gogpu/fbdraw"
)

func testGeometry() Geometry {
	return Geometry{
		ID:            "test",
		Width:         4,
		Height:        3,
		VirtualWidth:  4,
		VirtualHeight: 6,
		YOffset:       3,
		BitsPerPixel:  32,
		LineLength:    20,
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Geometry)
		wantErr error
	}{
		{"ok", func(*Geometry) {}, nil},
		{"16 bpp", func(g *Geometry) { g.BitsPerPixel = 16 }, ErrDepth},
		{"zero width", func(g *Geometry) { g.Width = 0 }, fbdraw.ErrDevice},
		{"short stride", func(g *Geometry) { g.LineLength = 12 }, fbdraw.ErrDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGeometry()
			tt.mutate(&g)
			err := g.validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeometryMapSize(t *testing.T) {
	g := testGeometry()
	if got := g.mapSize(); got != 20*6 {
		t.Errorf("mapSize() = %d, want %d", got, 20*6)
	}
	g.MemLen = 4096
	if got := g.mapSize(); got != 4096 {
		t.Errorf("mapSize() with MemLen = %d, want 4096", got)
	}
}

func TestGeometryBuffer(t *testing.T) {
	g := testGeometry()
	mem := make([]byte, g.mapSize())
	buf := g.buffer(mem)

	if buf.Width != 4 || buf.Height != 3 || buf.Stride != 20 || buf.YOffset != 3 {
		t.Errorf("buffer() = %+v", buf)
	}

	// Rendering into the buffer lands in the panned half of mem.
	c, err := fbdraw.NewCanvas(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 0, 0xFF112233)
	if err := fbdraw.Render(buf, c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := mem[3*20 : 3*20+4]; got[0] != 0x33 || got[1] != 0x22 || got[2] != 0x11 || got[3] != 0xFF {
		t.Errorf("first visible pixel bytes = %x, want 332211ff", got)
	}
	for i := 0; i < 3*20; i++ {
		if mem[i] != 0 {
			t.Fatalf("byte %d of the hidden page written", i)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("/nonexistent/fb")
	if err == nil {
		t.Fatal("Open() of a missing device succeeded")
	}
	if !errors.Is(err, fbdraw.ErrNoDevice) && !errors.Is(err, ErrUnsupported) {
		t.Errorf("Open() error = %v, want ErrNoDevice or ErrUnsupported", err)
	}
}
