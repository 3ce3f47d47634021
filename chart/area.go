package chart

import (
	"image"
	"sort"

	"github.com/vizgo/viz"
)

// AreaChart plots each series as the alpha-blended region between its
// curve and the x axis. The data range is pinned to include the origin
// so the baseline is always the axis, and series points are sorted by x
// before filling.
type AreaChart struct {
	Title  string
	XLabel string
	YLabel string

	cfg      viz.FigureConfig
	datasets []*AreaDataset
}

// NewAreaChart creates an empty area chart.
func NewAreaChart(title, xLabel, yLabel string, cfg viz.FigureConfig) *AreaChart {
	return &AreaChart{Title: title, XLabel: xLabel, YLabel: yLabel, cfg: cfg}
}

// AddDataset appends a series to the chart.
func (ch *AreaChart) AddDataset(d *AreaDataset) {
	ch.datasets = append(ch.datasets, d)
}

// Config returns the chart's figure configuration.
func (ch *AreaChart) Config() *viz.FigureConfig { return &ch.cfg }

func (ch *AreaChart) dataRange() viz.Range {
	r := viz.NewRange()
	r.IncludeOrigin()
	for _, d := range ch.datasets {
		for _, p := range d.Points() {
			r.Include(p.X, p.Y)
		}
	}
	return r
}

func (ch *AreaChart) mapping(c *viz.PixelCanvas) viz.Mapping {
	return viz.NewMapping(ch.dataRange(), c.Width(), c.Height(), c.Margin(), 1)
}

// sortedPoints returns a copy of the series ordered by ascending x, the
// order the column fill expects.
func sortedPoints(pts []viz.Point) []viz.Point {
	s := make([]viz.Point, len(pts))
	copy(s, pts)
	sort.Slice(s, func(i, j int) bool { return s[i].X < s[j].X })
	return s
}

// Draw renders the chart onto a raster canvas.
func (ch *AreaChart) Draw(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &ch.cfg, width/2, margin/2, ch.Title); err != nil {
		return err
	}
	DrawGrid(c, &ch.cfg)

	m := ch.mapping(c)
	originX, originY := m.Origin()

	if err := DrawLabel(c, &ch.cfg, width-margin/2, originY, ch.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &ch.cfg, margin, margin/2, ch.YLabel); err != nil {
		return err
	}

	r := ch.dataRange()
	ticks := ch.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		vx := r.XMin + (r.XMax-r.XMin)/float64(ticks)*float64(i)
		tx, _ := m.ToPixel(vx, 0)
		if err := DrawAxisValue(c, &ch.cfg, tx, originY,
			formatValue(vx, false), AxisX); err != nil {
			return err
		}

		vy := r.YMin + (r.YMax-r.YMin)/float64(ticks)*float64(i)
		_, ty := m.ToPixel(0, vy)
		if err := DrawAxisValue(c, &ch.cfg, originX-10, ty,
			formatValue(vy, false), AxisY); err != nil {
			return err
		}
	}

	for _, d := range ch.datasets {
		pts := sortedPoints(d.Points())
		mapped := make([]image.Point, len(pts))
		for i, p := range pts {
			px, py := m.ToPixel(p.X, p.Y)
			mapped[i] = image.Pt(px, py)
		}
		c.FillAreaUnder(mapped, originY, d.Color, d.Alpha)
	}

	c.FillVertical(margin, viz.Black)
	c.FillVertical(width-margin, viz.Black)
	c.FillHorizontal(height-margin, viz.Black)
	c.FillHorizontal(margin, viz.Black)
	return nil
}

// DrawLegend renders one legend entry per dataset along the bottom
// margin.
func (ch *AreaChart) DrawLegend(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	entries := make([]LegendEntry, len(ch.datasets))
	for i, d := range ch.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	return DrawLegendEntries(c, &ch.cfg, entries)
}

// DrawSVG renders the chart as SVG fragments. Each series becomes a
// closed path dropping to the baseline at both ends, filled at the
// series alpha.
func (ch *AreaChart) DrawSVG(svg *viz.SVGCanvas) error {
	frame := svgFrame{
		title:  ch.Title,
		xLabel: ch.XLabel,
		yLabel: ch.YLabel,
		ticks:  ch.cfg.NumAxisTicks,
	}
	m := frame.draw(svg, ch.dataRange())

	for _, d := range ch.datasets {
		pts := sortedPoints(d.Points())
		if len(pts) == 0 {
			continue
		}
		_, baseY := m.ToPixelF(0, 0)

		startX, _ := m.ToPixelF(pts[0].X, 0)
		path := svgPathStart(startX, baseY)
		for _, p := range pts {
			x, y := m.ToPixelF(p.X, p.Y)
			path += svgPathLine(x, y)
		}
		endX, _ := m.ToPixelF(pts[len(pts)-1].X, 0)
		path += svgPathLine(endX, baseY) + "Z"

		svg.Append(svgFilledPath(path, d.Color, d.Alpha))
	}

	entries := make([]LegendEntry, len(ch.datasets))
	for i, d := range ch.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	svgLegendEntries(svg, &ch.cfg, entries)
	return nil
}
