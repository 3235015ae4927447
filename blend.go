package fbdraw

// Blend composites src onto dst and returns the new destination pixel.
//
// A transparent source leaves dst unchanged and a transparent destination
// takes src as is. Otherwise both alphas attenuate the sum of the two
// colours:
//
//	af = dst.a/255 * src.a/255
//	c  = byte((dst.c/255 + src.c/255) * af * 255)
//	a  = byte(af)
//
// Conversions truncate and wrap modulo 256. This is not source-over
// compositing; the result alpha is 1 for two opaque inputs and 0 otherwise.
func Blend(dst, src uint32) uint32 {
	sr, sg, sb, sa := Unpack(src)
	if sa == 0 {
		return dst
	}
	dr, dg, db, da := Unpack(dst)
	if da == 0 {
		return src
	}

	af := float64(da) / 255 * float64(sa) / 255
	r := toByte((float64(dr)/255 + float64(sr)/255) * af * 255)
	g := toByte((float64(dg)/255 + float64(sg)/255) * af * 255)
	b := toByte((float64(db)/255 + float64(sb)/255) * af * 255)
	return Pack(r, g, b, toByte(af))
}

// blendRow blends src into dst element-wise. len(src) must be >= len(dst).
func blendRow(dst, src []uint32) {
	for i := range dst {
		dst[i] = Blend(dst[i], src[i])
	}
}

// blendFill blends the single pixel p into every element of dst.
func blendFill(dst []uint32, p uint32) {
	for i := range dst {
		dst[i] = Blend(dst[i], p)
	}
}

// fill overwrites every element of dst with p.
func fill(dst []uint32, p uint32) {
	if len(dst) == 0 {
		return
	}
	dst[0] = p
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
