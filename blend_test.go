package fbdraw

import "testing"

func TestBlendTransparentSource(t *testing.T) {
	dsts := []uint32{0, 0xFFFFFFFF, 0x80123456, Pack(9, 8, 7, 1)}
	srcs := []uint32{0, 0x00FFFFFF, 0x00123456}
	for _, dst := range dsts {
		for _, src := range srcs {
			if got := Blend(dst, src); got != dst {
				t.Errorf("Blend(%#08x, %#08x) = %#08x, want dst", dst, src, got)
			}
		}
	}
}

func TestBlendTransparentDestination(t *testing.T) {
	src := Pack(10, 20, 30, 40)
	if got := Blend(Pack(200, 200, 200, 0), src); got != src {
		t.Errorf("Blend() over transparent dst = %#08x, want %#08x", got, src)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		dst, src uint32
		want     uint32
	}{
		{
			name: "opaque over opaque",
			dst:  Pack(0, 0, 0, 255),
			src:  Pack(255, 0, 0, 255),
			want: Pack(255, 0, 0, 1),
		},
		{
			name: "channels add",
			dst:  Pack(0, 0, 255, 255),
			src:  Pack(0, 255, 0, 255),
			want: Pack(0, 255, 255, 1),
		},
		{
			name: "sum wraps",
			dst:  Pack(255, 0, 0, 255),
			src:  Pack(255, 0, 0, 255),
			want: Pack(254, 0, 0, 1), // 510 mod 256
		},
		{
			name: "translucent source",
			dst:  Pack(100, 0, 0, 255),
			src:  Pack(100, 0, 0, 128),
			want: Pack(100, 0, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.dst, tt.src); got != tt.want {
				t.Errorf("Blend(%#08x, %#08x) = %#08x, want %#08x", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 100} {
		dst := make([]uint32, n)
		fill(dst, 0xDEADBEEF)
		for i, p := range dst {
			if p != 0xDEADBEEF {
				t.Fatalf("fill(len %d): dst[%d] = %#08x", n, i, p)
			}
		}
	}
}

func TestFillUniformBytes(t *testing.T) {
	// Pixels whose four bytes are equal must be written as is.
	for _, p := range []uint32{0xFFFFFFFF, 0x7F7F7F7F, 0x01010101} {
		dst := make([]uint32, 5)
		fill(dst, p)
		for i, got := range dst {
			if got != p {
				t.Errorf("fill(%#08x): dst[%d] = %#08x", p, i, got)
			}
		}
	}
}
