package chart

import (
	"github.com/vizgo/viz"
)

// Quadrant1Graph plots polyline datasets restricted to the first
// quadrant. Points with a negative coordinate are dropped at AddDataset
// time, and the axes run along the bottom-left margins with the origin
// anchored at their intersection.
type Quadrant1Graph struct {
	Title  string
	XLabel string
	YLabel string

	cfg      viz.FigureConfig
	datasets []*CartesianDataset
}

// NewQuadrant1Graph creates an empty first-quadrant graph.
func NewQuadrant1Graph(title, xLabel, yLabel string, cfg viz.FigureConfig) *Quadrant1Graph {
	return &Quadrant1Graph{Title: title, XLabel: xLabel, YLabel: yLabel, cfg: cfg}
}

// AddDataset appends a series, keeping only points with x >= 0 and
// y >= 0.
func (g *Quadrant1Graph) AddDataset(d *CartesianDataset) {
	filtered := &CartesianDataset{Label: d.Label, Color: d.Color, Style: d.Style}
	for _, p := range d.Points() {
		if p.X >= 0 && p.Y >= 0 {
			filtered.AddPoint(p.X, p.Y)
		}
	}
	g.datasets = append(g.datasets, filtered)
}

// Config returns the graph's figure configuration.
func (g *Quadrant1Graph) Config() *viz.FigureConfig { return &g.cfg }

// dataRange folds every dataset point, pinned to include the origin so
// the axes always start at zero.
func (g *Quadrant1Graph) dataRange() viz.Range {
	r := viz.NewRange()
	r.IncludeOrigin()
	for _, d := range g.datasets {
		for _, p := range d.Points() {
			r.Include(p.X, p.Y)
		}
	}
	return r
}

func (g *Quadrant1Graph) mapping(c *viz.PixelCanvas) viz.Mapping {
	return viz.NewMapping(g.dataRange(), c.Width(), c.Height(), c.Margin(), 1)
}

// Draw renders the graph onto a raster canvas.
func (g *Quadrant1Graph) Draw(c *viz.PixelCanvas) error {
	if err := preflight(&g.cfg); err != nil {
		return err
	}
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &g.cfg, width/2, margin/2, g.Title); err != nil {
		return err
	}
	DrawGrid(c, &g.cfg)

	m := g.mapping(c)
	originX, originY := m.Origin()

	if err := DrawLabel(c, &g.cfg, margin, margin/2, g.YLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &g.cfg, width-margin/2, originY, g.XLabel); err != nil {
		return err
	}

	r := g.dataRange()
	ticks := g.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		vx := r.XMin + (r.XMax-r.XMin)/float64(ticks)*float64(i)
		tx, _ := m.ToPixel(vx, 0)
		if err := DrawAxisValue(c, &g.cfg, tx, originY,
			formatValue(vx, false), AxisX); err != nil {
			return err
		}

		vy := r.YMin + (r.YMax-r.YMin)/float64(ticks)*float64(i)
		_, ty := m.ToPixel(0, vy)
		if err := DrawAxisValue(c, &g.cfg, originX-10, ty,
			formatValue(vy, false), AxisY); err != nil {
			return err
		}
	}

	for _, d := range g.datasets {
		pts := d.Points()
		for i := 1; i < len(pts); i++ {
			x1, y1 := m.ToPixel(pts[i-1].X, pts[i-1].Y)
			x2, y2 := m.ToPixel(pts[i].X, pts[i].Y)
			c.DrawLine(x1, y1, x2, y2, d.Color, d.Style)
		}
	}

	// Frame around the drawable area.
	c.FillVertical(margin, viz.Black)
	c.FillVertical(width-margin, viz.Black)
	c.FillHorizontal(height-margin, viz.Black)
	c.FillHorizontal(margin, viz.Black)
	return nil
}

// DrawLegend renders one legend entry per dataset along the bottom
// margin.
func (g *Quadrant1Graph) DrawLegend(c *viz.PixelCanvas) error {
	if err := preflight(&g.cfg); err != nil {
		return err
	}
	entries := make([]LegendEntry, len(g.datasets))
	for i, d := range g.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	return DrawLegendEntries(c, &g.cfg, entries)
}

// DrawSVG renders the graph as SVG fragments.
func (g *Quadrant1Graph) DrawSVG(svg *viz.SVGCanvas) error {
	frame := svgFrame{
		title:  g.Title,
		xLabel: g.XLabel,
		yLabel: g.YLabel,
		ticks:  g.cfg.NumAxisTicks,
	}
	m := frame.draw(svg, g.dataRange())

	for _, d := range g.datasets {
		svgPolyline(svg, m, d.Points(), d.Color, d.Style)
	}

	entries := make([]LegendEntry, len(g.datasets))
	for i, d := range g.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	svgLegendEntries(svg, &g.cfg, entries)
	return nil
}
