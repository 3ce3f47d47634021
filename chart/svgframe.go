package chart

import (
	"fmt"

	"github.com/vizgo/viz"
)

// svgFrame renders the furniture every SVG chart shares: background,
// title, grid, axes, tick marks with value labels and the two axis
// labels. Charts draw the frame first and paint their datasets over it.
type svgFrame struct {
	title  string
	xLabel string
	yLabel string
	ticks  int

	// centered puts the axes through the data-space origin instead of
	// along the bottom-left margins.
	centered bool
}

const svgFontSize = 12.0

// draw emits the frame and returns the data-to-canvas mapping the
// caller should plot its datasets with.
func (f svgFrame) draw(svg *viz.SVGCanvas, r viz.Range) viz.Mapping {
	width := svg.Width()
	height := svg.Height()
	margin := svg.Margin()

	m := viz.NewMapping(r, int(width), int(height), int(margin), 1)

	svg.Rect(0, 0, width, height, "white", "black", 2, 1)
	svg.Text(width/2, margin/2, f.title, svgFontSize*2, "black")

	svg.Grid(margin, width-margin, margin, height-margin,
		f.ticks, f.ticks, "lightgray")

	axisX, axisY := height-margin, margin
	if f.centered {
		ox, oy := m.ToPixelF(0, 0)
		axisX, axisY = oy, ox
	}
	svg.Line(margin, axisX, width-margin, axisX, "black", 2)
	svg.Line(axisY, margin, axisY, height-margin, "black", 2)

	var xTicks string
	for i := 0; i <= f.ticks; i++ {
		value := r.XMin + float64(i)*(r.XMax-r.XMin)/float64(f.ticks)
		x := margin + float64(i)*(width-2*margin)/float64(f.ticks)
		xTicks += fmt.Sprintf("M %.2f,%.2f L %.2f,%.2f ", x, axisX-5, x, axisX+5)
		svg.Text(x, height-margin+svgFontSize*1.5,
			fmt.Sprintf("%.1f", value), svgFontSize, "black")
	}
	svg.Path(xTicks, "black", 1)

	var yTicks string
	for i := 0; i <= f.ticks; i++ {
		value := r.YMin + float64(i)*(r.YMax-r.YMin)/float64(f.ticks)
		y := height - margin - float64(i)*(height-2*margin)/float64(f.ticks)
		yTicks += fmt.Sprintf("M %.2f,%.2f L %.2f,%.2f ", axisY-5, y, axisY+5, y)
		svg.TextAnchored(margin-5, y+svgFontSize*0.3,
			fmt.Sprintf("%.1f", value), svgFontSize, "black", "end")
	}
	svg.Path(yTicks, "black", 1)

	svg.Text(width/2, height-margin/3, f.xLabel, svgFontSize*1.5, "black")
	svg.TextRotated(margin/3, height/2, f.yLabel, svgFontSize*1.5, "black", -90)

	return m
}

func svgPathStart(x, y float64) string {
	return fmt.Sprintf("M %.2f,%.2f ", x, y)
}

func svgPathLine(x, y float64) string {
	return fmt.Sprintf("L %.2f,%.2f ", x, y)
}

// svgFilledPath wraps path data in a filled, translucent path element.
func svgFilledPath(d string, col viz.RGB, opacity float64) string {
	return fmt.Sprintf(
		`<path d="%s" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="1"/>`,
		d, col.SVG(), opacity, col.SVG())
}

// svgPolyline plots a dataset as a sequence of styled line segments.
func svgPolyline(svg *viz.SVGCanvas, m viz.Mapping, points []viz.Point, col viz.RGB, style viz.LineStyle) {
	for i := 1; i < len(points); i++ {
		x1, y1 := m.ToPixelF(points[i-1].X, points[i-1].Y)
		x2, y2 := m.ToPixelF(points[i].X, points[i].Y)
		svg.LineStyled(x1, y1, x2, y2, col, 2, style)
	}
}
