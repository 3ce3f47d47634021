package viz

// LineKind selects how a line's pixels are chosen along its path.
type LineKind uint8

const (
	// LineSolid paints every visited pixel.
	LineSolid LineKind = iota
	// LineThickSolid paints a 5-pixel vertical stripe at every visited
	// column. This approximates thickness and is only accurate for lines
	// that are not near-vertical; true constant-width stroking would
	// require perpendicular offsets.
	LineThickSolid
	// LineDashed alternates painted and skipped runs of Segment pixels.
	LineDashed
	// LineDotted is rendered identically to LineDashed on the raster
	// surface; the variants differ only in SVG output.
	LineDotted
	// LineSquared stamps a filled Side x Side square every Gap pixels
	// along the path.
	LineSquared
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineSolid:
		return "solid"
	case LineThickSolid:
		return "thick-solid"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	case LineSquared:
		return "squared"
	default:
		return "unknown"
	}
}

// LineStyle is the stroke style of a line: a kind plus the pixel
// parameters the kind needs. Construct values with Solid, ThickSolid,
// Dashed, Dotted or Squared.
type LineStyle struct {
	Kind LineKind
	// Segment is the run length in pixels for dashed and dotted lines.
	Segment int
	// Gap is the path distance in pixels between squares for squared
	// lines.
	Gap int
	// Side is the square side length in pixels for squared lines.
	Side int
}

// Solid returns the style that paints every pixel on the path.
func Solid() LineStyle { return LineStyle{Kind: LineSolid} }

// ThickSolid returns the 5-pixel-stripe approximation of a thick line.
func ThickSolid() LineStyle { return LineStyle{Kind: LineThickSolid} }

// Dashed returns a dashed style with runs of segment pixels.
// Non-positive segments degrade to solid.
func Dashed(segment int) LineStyle {
	return LineStyle{Kind: LineDashed, Segment: segment}
}

// Dotted returns a dotted style with runs of segment pixels.
// Non-positive segments degrade to solid.
func Dotted(segment int) LineStyle {
	return LineStyle{Kind: LineDotted, Segment: segment}
}

// Squared returns a style that stamps a filled side x side square every
// gap pixels along the path.
func Squared(gap, side int) LineStyle {
	return LineStyle{Kind: LineSquared, Gap: gap, Side: side}
}

// StrokeDashArray returns the SVG stroke-dasharray attribute value for
// the style, or "" for styles that render as a continuous stroke.
func (s LineStyle) StrokeDashArray() string {
	switch s.Kind {
	case LineDashed:
		if s.Segment > 0 {
			return itoa(s.Segment) + "," + itoa(s.Segment)
		}
	case LineDotted:
		if s.Segment > 0 {
			return "1," + itoa(s.Segment)
		}
	}
	return ""
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}

// DrawLine draws a line segment from (x1, y1) to (x2, y2) using the
// integer incremental (Bresenham) algorithm: an accumulated error term
// with unit steps in the dominant axis. Negative or out-of-range
// coordinates are harmless; the pixel writes drop them.
//
// A zero-length line (both endpoints equal) paints the endpoint: one
// pixel for every kind except LineSquared, which stamps one square.
func (c *PixelCanvas) DrawLine(x1, y1, x2, y2 int, col RGB, style LineStyle) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	errTerm := dx + dy
	x, y := x1, y1

	step := func() {
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x += sx
		}
		if e2 <= dx {
			errTerm += dx
			y += sy
		}
	}

	switch style.Kind {
	case LineThickSolid:
		for x != x2 || y != y2 {
			c.SetPixel(x, y-2, col)
			c.SetPixel(x, y-1, col)
			c.SetPixel(x, y, col)
			c.SetPixel(x, y+1, col)
			c.SetPixel(x, y+2, col)
			step()
		}
		c.SetPixel(x2, y2, col)

	case LineDashed, LineDotted:
		if style.Segment <= 0 {
			c.DrawLine(x1, y1, x2, y2, col, Solid())
			return
		}
		drawing := true
		run := 0
		for x != x2 || y != y2 {
			if drawing {
				c.SetPixel(x, y, col)
			}
			run++
			if run == style.Segment {
				drawing = !drawing
				run = 0
			}
			step()
		}
		// The endpoint is painted only when the pattern is in a
		// drawing run at loop exit.
		if drawing {
			c.SetPixel(x2, y2, col)
		}

	case LineSquared:
		run := 0
		for x != x2 || y != y2 {
			run++
			if run == style.Gap {
				c.fillSquare(x, y, style.Side, col)
				run = 0
			}
			step()
		}
		c.fillSquare(x2, y2, style.Side, col)

	default: // LineSolid
		for x != x2 || y != y2 {
			c.SetPixel(x, y, col)
			step()
		}
		c.SetPixel(x2, y2, col)
	}
}

// fillSquare stamps a filled side x side square centered on (cx, cy).
// Sides below 2 paint the single center pixel.
func (c *PixelCanvas) fillSquare(cx, cy, side int, col RGB) {
	if side < 2 {
		c.SetPixel(cx, cy, col)
		return
	}
	half := side / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			c.SetPixel(cx+dx, cy+dy, col)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
