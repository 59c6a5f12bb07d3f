package chromix

// Presentation pass opacities: an additive pass at 0.8 for glow and a
// screen pass at 0.4 to lift the midtones.
const (
	plusPassOpacity   = 0.8
	screenPassOpacity = 0.4
)

// presentationComposite applies the optional two-pass presentation blend to
// a rendered buffer: an additive (Plus) pass followed by a screen pass, each
// at reduced opacity, composited onto a transparent base. Purely cosmetic —
// it layers on top of the base blend and never feeds back into sampling.
func presentationComposite(buf *Pixmap) *Pixmap {
	out := NewPixmap(buf.width, buf.height)
	compositePass(out, buf, plusPassOpacity, blendPlus)
	compositePass(out, buf, screenPassOpacity, blendScreen)
	return out
}

// compositePass blends src into dst per channel with the given blend
// function, with src attenuated by opacity.
func compositePass(dst, src *Pixmap, opacity float64, blend func(d, s float64) float64) {
	for y := 0; y < dst.height; y++ {
		for x := 0; x < dst.width; x++ {
			s := src.GetPixel(x, y)
			if s.A == 0 {
				continue
			}
			d := dst.GetPixel(x, y)
			dst.SetPixel(x, y, RGBA{
				R: clamp01(blend(d.R, s.R*opacity)),
				G: clamp01(blend(d.G, s.G*opacity)),
				B: clamp01(blend(d.B, s.B*opacity)),
				A: clamp01(blend(d.A, s.A*opacity)),
			})
		}
	}
}

// blendPlus is additive blending, clipped at white.
func blendPlus(d, s float64) float64 {
	return d + s
}

// blendScreen is the screen blend: s + d - s·d.
func blendScreen(d, s float64) float64 {
	return s + d - s*d
}
