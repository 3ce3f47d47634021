package chart

import (
	"github.com/vizgo/viz"
)

// CartesianGraph plots polyline datasets on a four-quadrant plane with
// the axes crossing at the data-space origin. The data range is
// mirrored around zero on both axes, so the origin always lands in the
// canvas center.
type CartesianGraph struct {
	Title  string
	XLabel string
	YLabel string

	cfg      viz.FigureConfig
	datasets []*CartesianDataset
}

// NewCartesianGraph creates an empty cartesian graph.
func NewCartesianGraph(title, xLabel, yLabel string, cfg viz.FigureConfig) *CartesianGraph {
	return &CartesianGraph{Title: title, XLabel: xLabel, YLabel: yLabel, cfg: cfg}
}

// AddDataset appends a series to the graph.
func (g *CartesianGraph) AddDataset(d *CartesianDataset) {
	g.datasets = append(g.datasets, d)
}

// Config returns the graph's figure configuration.
func (g *CartesianGraph) Config() *viz.FigureConfig { return &g.cfg }

// dataRange folds every dataset point and mirrors the result around
// zero per axis.
func (g *CartesianGraph) dataRange() viz.Range {
	r := viz.NewRange()
	for _, d := range g.datasets {
		for _, p := range d.Points() {
			r.Include(p.X, p.Y)
		}
	}
	if r.Empty() {
		r.IncludeOrigin()
	}
	r.Symmetric()
	return r
}

func (g *CartesianGraph) mapping(c *viz.PixelCanvas) viz.Mapping {
	return viz.NewMapping(g.dataRange(), c.Width(), c.Height(), c.Margin(), 1)
}

// Draw renders the graph onto a raster canvas.
func (g *CartesianGraph) Draw(c *viz.PixelCanvas) error {
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
	c.FillVertical(originX, g.cfg.ColorAxis)
	c.FillHorizontal(originY, g.cfg.ColorAxis)

	for _, d := range g.datasets {
		pts := d.Points()
		for i := 1; i < len(pts); i++ {
			x1, y1 := m.ToPixel(pts[i-1].X, pts[i-1].Y)
			x2, y2 := m.ToPixel(pts[i].X, pts[i].Y)
			c.DrawLine(x1, y1, x2, y2, d.Color, d.Style)
		}
	}

	if err := DrawLabel(c, &g.cfg, width-margin/2, originY, g.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &g.cfg, margin, margin/2, g.YLabel); err != nil {
		return err
	}

	r := g.dataRange()
	ticks := g.cfg.NumAxisTicks
	xStep := (width - 2*margin) / ticks
	yStep := (height - 2*margin) / ticks
	for i := 0; i <= ticks; i++ {
		vx := r.XMin + (r.XMax-r.XMin)/float64(ticks)*float64(i)
		if err := DrawAxisValue(c, &g.cfg, margin+i*xStep, height-margin,
			formatValue(vx, true), AxisX); err != nil {
			return err
		}

		vy := r.YMin + (r.YMax-r.YMin)/float64(ticks)*float64(i)
		if err := DrawAxisValue(c, &g.cfg, margin-10, height-(margin+i*yStep),
			formatValue(vy, false), AxisY); err != nil {
			return err
		}
	}
	return nil
}

// DrawLegend renders one legend entry per dataset along the bottom
// margin.
func (g *CartesianGraph) DrawLegend(c *viz.PixelCanvas) error {
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
func (g *CartesianGraph) DrawSVG(svg *viz.SVGCanvas) error {
	frame := svgFrame{
		title:    g.Title,
		xLabel:   g.XLabel,
		yLabel:   g.YLabel,
		ticks:    20,
		centered: true,
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
