package viz

// MarkerKind selects the shape stamped for a scatter point.
type MarkerKind uint8

const (
	// MarkerCircle is a filled circle; Size is the radius.
	MarkerCircle MarkerKind = iota
	// MarkerSquare is a filled square; Size is the side length.
	MarkerSquare
	// MarkerCross is a plus-shaped cross; Size is the arm thickness.
	MarkerCross
	// MarkerTriangle is a filled upward triangle; Size is the base width.
	MarkerTriangle
)

// Marker describes a scatter point shape and its pixel dimension. The
// meaning of Size depends on the kind; see the MarkerKind constants.
type Marker struct {
	Kind MarkerKind
	Size int
}

// Circle returns a circular marker with the given radius.
func Circle(radius int) Marker { return Marker{Kind: MarkerCircle, Size: radius} }

// Square returns a square marker with the given side length.
func Square(side int) Marker { return Marker{Kind: MarkerSquare, Size: side} }

// Cross returns a cross marker with the given arm thickness.
func Cross(thickness int) Marker { return Marker{Kind: MarkerCross, Size: thickness} }

// Triangle returns a triangular marker with the given base width.
func Triangle(base int) Marker { return Marker{Kind: MarkerTriangle, Size: base} }

// DrawMarker stamps a marker centered on (x, y). Parts of the marker
// falling outside the canvas are dropped by the pixel writes.
func (c *PixelCanvas) DrawMarker(x, y int, m Marker, col RGB) {
	switch m.Kind {
	case MarkerSquare:
		half := m.Size / 2
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				c.SetPixel(x+dx, y+dy, col)
			}
		}
	case MarkerCross:
		for i := -m.Size; i <= m.Size; i++ {
			c.SetPixel(x+i, y, col)
			c.SetPixel(x, y+i, col)
		}
	case MarkerTriangle:
		base := m.Size
		if base < 1 {
			c.SetPixel(x, y, col)
			return
		}
		for dy := 0; dy <= base; dy++ {
			dx := int(float64(base) * (1.0 - float64(dy)/float64(base)))
			for off := -dx; off <= dx; off++ {
				c.SetPixel(x+off, y-dy, col)
			}
		}
	default: // MarkerCircle
		r := m.Size
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy <= r*r {
					c.SetPixel(x+dx, y+dy, col)
				}
			}
		}
	}
}
