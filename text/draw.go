package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// charSpacing is the extra vertical gap between stacked characters in
// DrawVertical.
const charSpacing = 5

// Measure returns the pixel dimensions of a text run: the horizontal
// advance and the line height (ascent + descent).
func Measure(s string, f *Face) (width, height float64) {
	adv := font.MeasureString(f.face, s)
	m := f.face.Metrics()
	return fixedToFloat(adv), fixedToFloat(m.Ascent + m.Descent)
}

// Draw stamps a text run onto dst with (x, y) as the top-left corner of
// its bounding box. Glyph edges are composited over the existing pixels
// by the font rasterizer's coverage mask.
func Draw(dst draw.Image, s string, f *Face, x, y float64, col color.Color) {
	m := f.face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + m.Ascent,
		},
	}
	d.DrawString(s)
}

// DrawVertical stamps a text run one character per line, top to bottom,
// each centered horizontally on x. Used for y-axis labels.
func DrawVertical(dst draw.Image, s string, f *Face, x, y float64, col color.Color) {
	cy := y
	for _, r := range s {
		ch := string(r)
		w, h := Measure(ch, f)
		Draw(dst, ch, f, x-w/2, cy, col)
		cy += h + charSpacing
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
