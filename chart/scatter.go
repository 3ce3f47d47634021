package chart

import (
	"github.com/vizgo/viz"
)

// ScatterGraph stamps a marker at every dataset point. The data range
// is pinned to include the origin and the axes run along the
// bottom-left margins.
type ScatterGraph struct {
	Title  string
	XLabel string
	YLabel string

	cfg      viz.FigureConfig
	datasets []*ScatterDataset
}

// NewScatterGraph creates an empty scatter graph.
func NewScatterGraph(title, xLabel, yLabel string, cfg viz.FigureConfig) *ScatterGraph {
	return &ScatterGraph{Title: title, XLabel: xLabel, YLabel: yLabel, cfg: cfg}
}

// AddDataset appends a series to the graph.
func (g *ScatterGraph) AddDataset(d *ScatterDataset) {
	g.datasets = append(g.datasets, d)
}

// Config returns the graph's figure configuration.
func (g *ScatterGraph) Config() *viz.FigureConfig { return &g.cfg }

func (g *ScatterGraph) dataRange() viz.Range {
	r := viz.NewRange()
	r.IncludeOrigin()
	for _, d := range g.datasets {
		for _, p := range d.Points() {
			r.Include(p.X, p.Y)
		}
	}
	return r
}

func (g *ScatterGraph) mapping(c *viz.PixelCanvas) viz.Mapping {
	return viz.NewMapping(g.dataRange(), c.Width(), c.Height(), c.Margin(), 1)
}

// Draw renders the graph onto a raster canvas.
func (g *ScatterGraph) Draw(c *viz.PixelCanvas) error {
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

	if err := DrawLabel(c, &g.cfg, width-margin/2, originY, g.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &g.cfg, margin, margin/2, g.YLabel); err != nil {
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
		for _, p := range d.Points() {
			px, py := m.ToPixel(p.X, p.Y)
			c.DrawMarker(px, py, d.Marker, d.Color)
		}
	}

	c.FillVertical(margin, viz.Black)
	c.FillVertical(width-margin, viz.Black)
	c.FillHorizontal(height-margin, viz.Black)
	c.FillHorizontal(margin, viz.Black)
	return g.DrawLegend(c)
}

// DrawLegend renders one legend entry per dataset along the bottom
// margin.
func (g *ScatterGraph) DrawLegend(c *viz.PixelCanvas) error {
	if err := preflight(&g.cfg); err != nil {
		return err
	}
	entries := make([]LegendEntry, len(g.datasets))
	for i, d := range g.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	return DrawLegendEntries(c, &g.cfg, entries)
}

// DrawSVG renders the graph as SVG fragments with a circle per point.
func (g *ScatterGraph) DrawSVG(svg *viz.SVGCanvas) error {
	frame := svgFrame{
		title:  g.Title,
		xLabel: g.XLabel,
		yLabel: g.YLabel,
		ticks:  g.cfg.NumAxisTicks,
	}
	m := frame.draw(svg, g.dataRange())

	for _, d := range g.datasets {
		r := float64(d.Marker.Size)
		if r <= 0 {
			r = 3
		}
		for _, p := range d.Points() {
			x, y := m.ToPixelF(p.X, p.Y)
			svg.Circle(x, y, r, d.Color.SVG())
		}
	}

	entries := make([]LegendEntry, len(g.datasets))
	for i, d := range g.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	svgLegendEntries(svg, &g.cfg, entries)
	return nil
}
