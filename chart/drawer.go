package chart

import (
	"github.com/vizgo/viz"
	"github.com/vizgo/viz/text"
)

// Drawer renders a chart onto raster and vector surfaces. Draw and
// DrawSVG paint a complete frame in one synchronous pass; the surface
// is borrowed for the duration of the call and not retained.
type Drawer interface {
	// Draw renders the chart onto a raster canvas. It validates the
	// configuration before touching any pixel: a misconfigured chart
	// returns an error with the canvas untouched, and a draw that
	// starts always completes a full frame.
	Draw(c *viz.PixelCanvas) error

	// DrawLegend renders the chart's legend onto the canvas.
	DrawLegend(c *viz.PixelCanvas) error

	// DrawSVG renders the chart as SVG fragments.
	DrawSVG(svg *viz.SVGCanvas) error

	// Config returns the chart's figure configuration.
	Config() *viz.FigureConfig
}

// AxisType identifies which axis a tick label belongs to, which decides
// how the label is offset from its anchor.
type AxisType int

const (
	// AxisX labels are centered under their tick.
	AxisX AxisType = iota
	// AxisY labels are right-aligned beside their tick.
	AxisY
)

// preflight validates the configuration and loads both fonts. Charts
// call it first so that every configuration failure surfaces before a
// single pixel is written.
func preflight(cfg *viz.FigureConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := fontSource(cfg.FontLabel); err != nil {
		return err
	}
	if _, err := fontSource(cfg.FontTitle); err != nil {
		return err
	}
	return nil
}

// DrawGrid fills the drawable area with grid lines at the spacing
// configured in cfg.
func DrawGrid(c *viz.PixelCanvas, cfg *viz.FigureConfig) {
	c.FillGrid(cfg.NumGridHorizontal, cfg.NumGridVertical, cfg.ColorGrid)
}

// DrawAxisLine draws a solid axis line in the configured axis color.
func DrawAxisLine(c *viz.PixelCanvas, cfg *viz.FigureConfig, x1, y1, x2, y2 int) {
	c.DrawLine(x1, y1, x2, y2, cfg.ColorAxis, viz.Solid())
}

// DrawTitle stamps the chart title centered on (x, y).
func DrawTitle(c *viz.PixelCanvas, cfg *viz.FigureConfig, x, y int, s string) error {
	f, err := fontFace(cfg.FontTitle, cfg.FontSizeTitle)
	if err != nil {
		return err
	}
	w, h := text.Measure(s, f)
	text.Draw(c, s, f, float64(x)-w/2, float64(y)-h/2, cfg.ColorTitle.NRGBA())
	return nil
}

// DrawLabel stamps an axis label centered on (x, y) in the label font.
func DrawLabel(c *viz.PixelCanvas, cfg *viz.FigureConfig, x, y int, s string) error {
	f, err := fontFace(cfg.FontLabel, cfg.FontSizeLabel)
	if err != nil {
		return err
	}
	w, h := text.Measure(s, f)
	text.Draw(c, s, f, float64(x)-w/2, float64(y)-h/2, cfg.ColorAxis.NRGBA())
	return nil
}

// DrawAxisValue stamps a tick value near its tick position. X-axis
// values are centered below the anchor; y-axis values sit to its left,
// vertically centered.
func DrawAxisValue(c *viz.PixelCanvas, cfg *viz.FigureConfig, x, y int, s string, axis AxisType) error {
	f, err := fontFace(cfg.FontLabel, cfg.FontSizeAxis)
	if err != nil {
		return err
	}
	w, h := text.Measure(s, f)
	fx, fy := float64(x), float64(y)
	switch axis {
	case AxisX:
		fx -= w / 2
		fy += h
	case AxisY:
		fx -= w
		fy -= h / 2
	}
	text.Draw(c, s, f, fx, fy, cfg.ColorAxis.NRGBA())
	return nil
}
