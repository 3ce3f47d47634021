package chart

import (
	"fmt"
	"math"

	"github.com/vizgo/viz"
)

// PieSlice is one labeled, colored value of a pie chart.
type PieSlice struct {
	Label string
	Value float64
	Color viz.RGB
}

// PieChart plots slices proportional to their share of the total.
// Slices are painted counter-clockwise from the positive x axis in
// insertion order, each labeled with its percentage at 60% radius.
type PieChart struct {
	Title string

	cfg    viz.FigureConfig
	slices []PieSlice
}

// NewPieChart creates an empty pie chart.
func NewPieChart(title string, cfg viz.FigureConfig) *PieChart {
	return &PieChart{Title: title, cfg: cfg}
}

// AddSlice appends a slice.
func (ch *PieChart) AddSlice(label string, value float64, col viz.RGB) {
	ch.slices = append(ch.slices, PieSlice{Label: label, Value: value, Color: col})
}

// Config returns the chart's figure configuration.
func (ch *PieChart) Config() *viz.FigureConfig { return &ch.cfg }

func (ch *PieChart) total() float64 {
	t := 0.0
	for _, s := range ch.slices {
		t += s.Value
	}
	return t
}

// Draw renders the pie onto a raster canvas. A chart whose values sum
// to zero draws only the title.
func (ch *PieChart) Draw(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &ch.cfg, width/2, margin/2, ch.Title); err != nil {
		return err
	}

	total := ch.total()
	if total == 0 {
		return nil
	}

	centerX := width / 2
	centerY := height / 2
	radius := min(width, height)/2 - margin

	startAngle := 0.0
	for _, s := range ch.slices {
		share := s.Value / total
		sweep := 2 * math.Pi * share
		ch.fillSlice(c, centerX, centerY, radius, startAngle, startAngle+sweep, s.Color)

		midAngle := startAngle + sweep/2
		labelX := float64(centerX) + float64(radius)*0.6*math.Cos(midAngle)
		labelY := float64(centerY) - float64(radius)*0.6*math.Sin(midAngle)
		if err := DrawLabel(c, &ch.cfg, int(labelX), int(labelY),
			fmt.Sprintf("%.1f%%", share*100)); err != nil {
			return err
		}

		startAngle += sweep
	}
	return ch.DrawLegend(c)
}

// fillSlice scan-fills the disc sector between startAngle and endAngle
// (radians, counter-clockwise from the positive x axis).
func (ch *PieChart) fillSlice(c *viz.PixelCanvas, centerX, centerY, radius int, startAngle, endAngle float64, col viz.RGB) {
	rr := float64(radius * radius)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if float64(x*x+y*y) > rr {
				continue
			}
			angle := math.Atan2(float64(y), float64(x))
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle >= startAngle && angle < endAngle {
				c.SetPixel(centerX+x, centerY-y, col)
			}
		}
	}
}

// DrawLegend renders one legend entry per slice along the bottom
// margin.
func (ch *PieChart) DrawLegend(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	entries := make([]LegendEntry, len(ch.slices))
	for i, s := range ch.slices {
		entries[i] = LegendEntry{Label: s.Label, Color: s.Color}
	}
	return DrawLegendEntries(c, &ch.cfg, entries)
}

// DrawSVG renders the pie as arc paths grouped around the canvas
// center.
func (ch *PieChart) DrawSVG(svg *viz.SVGCanvas) error {
	width := svg.Width()
	height := svg.Height()
	margin := svg.Margin()

	svg.Rect(0, 0, width, height, "white", "black", 1, 1)
	svg.Text(width/2, margin/2, ch.Title, svgFontSize*2, "black")

	total := ch.total()
	if total == 0 {
		return nil
	}

	cx := width / 2
	cy := height / 2
	radius := (math.Min(width, height) - 2*margin) / 2

	svg.Append(fmt.Sprintf(
		`<g transform="translate(%.2f,%.2f)" stroke="black" stroke-width="1">`, cx, cy))

	startAngle := 0.0
	for _, s := range ch.slices {
		share := s.Value / total
		sweep := share * 2 * math.Pi
		endAngle := startAngle + sweep

		x1 := radius * math.Cos(startAngle)
		y1 := radius * math.Sin(startAngle)
		x2 := radius * math.Cos(endAngle)
		y2 := radius * math.Sin(endAngle)

		largeArc := 0
		if sweep > math.Pi {
			largeArc = 1
		}

		svg.Append(fmt.Sprintf(
			`<path d="M 0 0 L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"/>`,
			x1, y1, radius, radius, largeArc, x2, y2, s.Color.SVG()))

		midAngle := startAngle + sweep/2
		svg.Text(radius*0.6*math.Cos(midAngle), radius*0.6*math.Sin(midAngle),
			fmt.Sprintf("%.1f%%", share*100), svgFontSize, "black")

		startAngle = endAngle
	}
	svg.Append("</g>")

	entries := make([]LegendEntry, len(ch.slices))
	for i, s := range ch.slices {
		entries[i] = LegendEntry{Label: s.Label, Color: s.Color}
	}
	svgLegendEntries(svg, &ch.cfg, entries)
	return nil
}
