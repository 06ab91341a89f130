// Package blend provides alpha compositing over straight-alpha RGBA8 pixels.
package blend

// ApplyCoverage scales a source alpha by a rasterizer coverage value,
// both in 0..255, with rounding.
func ApplyCoverage(alpha, coverage uint8) uint8 {
	return uint8((uint32(alpha)*uint32(coverage) + 127) / 255)
}

// SourceOver composites a straight-alpha source color over a straight-alpha
// destination color. The math premultiplies internally and unpremultiplies
// the result, so repeated blending stays correct for translucent
// destinations.
//
// A fully opaque source replaces the destination exactly.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}

	srcA := float64(sa) / 255
	dstA := float64(da) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA <= 0 {
		return 0, 0, 0, 0
	}

	outR := (float64(sr)*srcA + float64(dr)*dstA*invSrcA) / outA
	outG := (float64(sg)*srcA + float64(dg)*dstA*invSrcA) / outA
	outB := (float64(sb)*srcA + float64(db)*dstA*invSrcA) / outA

	return uint8(outR + 0.5), uint8(outG + 0.5), uint8(outB + 0.5), uint8(outA*255 + 0.5)
}
