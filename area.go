package viz

import "image"

// FillAreaUnder fills the region between a polyline and a horizontal
// baseline by per-column linear interpolation, blending every covered
// pixel with the given alpha. Points are surface coordinates and must be
// sorted by ascending x; the caller sorts.
//
// A vertical segment (equal x) is filled as a single column from the
// higher of its endpoints down to the baseline, with no interpolation.
func (c *PixelCanvas) FillAreaUnder(points []image.Point, baselineY int, col RGB, alpha float64) {
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]

		if p1.X == p2.X {
			for y := min(p1.Y, p2.Y); y <= baselineY; y++ {
				c.BlendPixel(p1.X, y, col, alpha)
			}
			continue
		}

		x1, x2 := p1.X, p2.X
		if x1 > x2 {
			x1, x2 = x2, x1
			p1, p2 = p2, p1
		}
		for x := x1; x <= x2; x++ {
			t := float64(x-p1.X) / float64(p2.X-p1.X)
			y := p1.Y + int(t*float64(p2.Y-p1.Y))
			for ; y <= baselineY; y++ {
				c.BlendPixel(x, y, col, alpha)
			}
		}
	}
}
