package viz

import (
	"fmt"
	"os"
	"strings"
)

// SVGCanvas accumulates SVG markup fragments in draw order. Order is
// significant: later fragments paint over earlier ones, the vector
// analogue of raster pixel overwrite. Every numeric attribute is
// formatted with exactly two decimal digits.
type SVGCanvas struct {
	width      float64
	height     float64
	margin     float64
	background string
	elements   []string
}

// NewSVGCanvas creates a vector canvas with the given pixel dimensions,
// a CSS background color string and a margin.
func NewSVGCanvas(width, height float64, background string, margin float64) *SVGCanvas {
	c := &SVGCanvas{
		width:      width,
		height:     height,
		margin:     margin,
		background: background,
	}
	c.Clear()
	return c
}

// Width returns the declared canvas width.
func (c *SVGCanvas) Width() float64 { return c.width }

// Height returns the declared canvas height.
func (c *SVGCanvas) Height() float64 { return c.height }

// Margin returns the margin reserved for axis and label furniture.
func (c *SVGCanvas) Margin() float64 { return c.margin }

// Background returns the configured background color string.
func (c *SVGCanvas) Background() string { return c.background }

// Clear resets the fragment sequence to the document header.
func (c *SVGCanvas) Clear() {
	c.elements = []string{fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`,
		int(c.width), int(c.height))}
}

// Append adds a raw markup fragment. The chart drawers use this for
// elements without a dedicated helper (tick paths, rotated labels).
func (c *SVGCanvas) Append(fragment string) {
	c.elements = append(c.elements, fragment)
}

// Line adds a line with a CSS color string.
func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, color string, strokeWidth float64) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`,
		x1, y1, x2, y2, color, strokeWidth))
}

// LineRGB adds a line with an RGB color.
func (c *SVGCanvas) LineRGB(x1, y1, x2, y2 float64, col RGB, strokeWidth float64) {
	c.Line(x1, y1, x2, y2, col.SVG(), strokeWidth)
}

// LineStyled adds a line whose stroke pattern follows a raster line
// style: dashed and dotted styles carry a stroke-dasharray, everything
// else renders as a continuous stroke.
func (c *SVGCanvas) LineStyled(x1, y1, x2, y2 float64, col RGB, strokeWidth float64, style LineStyle) {
	dash := style.StrokeDashArray()
	if dash == "" {
		c.LineRGB(x1, y1, x2, y2, col, strokeWidth)
		return
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-dasharray="%s"/>`,
		x1, y1, x2, y2, col.SVG(), strokeWidth, dash))
}

// Rect adds a rectangle with separate fill and stroke colors.
func (c *SVGCanvas) Rect(x, y, width, height float64, fill, stroke string, strokeWidth, opacity float64) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.2f" fill-opacity="%.2f"/>`,
		x, y, width, height, fill, stroke, strokeWidth, opacity))
}

// Circle adds a filled circle.
func (c *SVGCanvas) Circle(cx, cy, r float64, color string) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`,
		cx, cy, r, color))
}

// Text adds a center-anchored text element.
func (c *SVGCanvas) Text(x, y float64, text string, fontSize float64, color string) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" fill="%s">%s</text>`,
		x, y, fontSize, color, text))
}

// TextAnchored adds a text element with an explicit text-anchor
// ("start", "middle" or "end").
func (c *SVGCanvas) TextAnchored(x, y float64, text string, fontSize float64, color, anchor string) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="%s" fill="%s">%s</text>`,
		x, y, fontSize, anchor, color, text))
}

// TextRotated adds a center-anchored text element rotated by angle
// degrees around its own position, used for vertical axis labels.
func (c *SVGCanvas) TextRotated(x, y float64, text string, fontSize float64, color string, angle float64) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" fill="%s" transform="rotate(%.2f %.2f %.2f)">%s</text>`,
		x, y, fontSize, color, angle, x, y, text))
}

// Path adds an unfilled path element from raw path data.
func (c *SVGCanvas) Path(d, stroke string, strokeWidth float64) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<path d="%s" stroke="%s" stroke-width="%.2f" fill="none"/>`,
		d, stroke, strokeWidth))
}

// FontStyle adds an @import style block binding a web font to a CSS
// class.
func (c *SVGCanvas) FontStyle(fontURL, className, fontFamily string) {
	c.elements = append(c.elements, fmt.Sprintf(
		"<style>\n@import url('%s');\n.%s { font-family: '%s', sans-serif; }\n</style>",
		fontURL, className, fontFamily))
}

// Grid adds evenly spaced grid lines covering the rectangle
// [xMin, xMax] x [yMin, yMax], xTicks+1 vertical and yTicks+1
// horizontal.
func (c *SVGCanvas) Grid(xMin, xMax, yMin, yMax float64, xTicks, yTicks int, color string) {
	if xTicks > 0 {
		step := (xMax - xMin) / float64(xTicks)
		for i := 0; i <= xTicks; i++ {
			x := xMin + float64(i)*step
			c.Line(x, yMin, x, yMax, color, 0.5)
		}
	}
	if yTicks > 0 {
		step := (yMax - yMin) / float64(yTicks)
		for i := 0; i <= yTicks; i++ {
			y := yMin + float64(i)*step
			c.Line(xMin, y, xMax, y, color, 0.5)
		}
	}
}

// Save writes the document to a file: every fragment in insertion order
// followed by the closing tag. I/O errors are returned to the caller.
func (c *SVGCanvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	for _, e := range c.elements {
		if _, err := fmt.Fprintln(f, e); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(f, "</svg>")
	return err
}

// String returns the complete document as a single string.
func (c *SVGCanvas) String() string {
	var b strings.Builder
	for _, e := range c.elements {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}
