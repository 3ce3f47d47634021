package chart

import (
	"fmt"

	"github.com/vizgo/viz"
	"github.com/vizgo/viz/text"
)

// LegendEntry is one swatch-and-label pair in a chart legend.
type LegendEntry struct {
	Label string
	Color viz.RGB
}

const (
	legendSquare  = 10
	legendPadding = 5
	legendLine    = 20
)

// DrawLegendEntries paints legend entries along the bottom margin, left
// to right, wrapping upward into a new row when an entry would run past
// the right margin. Each entry is a colored square followed by its label
// in the same color.
func DrawLegendEntries(c *viz.PixelCanvas, cfg *viz.FigureConfig, entries []LegendEntry) error {
	f, err := fontFace(cfg.FontLabel, cfg.FontSizeLegend)
	if err != nil {
		return err
	}

	x := c.Margin()
	y := c.Height() - c.Margin()
	for _, e := range entries {
		w, h := text.Measure(e.Label, f)
		top := y + 2*legendSquare + int(h)
		for sy := 0; sy < legendSquare; sy++ {
			for sx := 0; sx < legendSquare; sx++ {
				c.SetPixel(x+sx, top+sy, e.Color)
			}
		}
		text.Draw(c, e.Label, f,
			float64(x+legendSquare+legendPadding), float64(top),
			e.Color.NRGBA())

		x += legendSquare + legendPadding + int(w) + legendPadding
		if x > c.Width()-c.Margin() {
			x = c.Margin()
			y -= legendLine
		}
	}
	return nil
}

// svgLegendEntries emits the same legend row as SVG fragments.
func svgLegendEntries(svg *viz.SVGCanvas, cfg *viz.FigureConfig, entries []LegendEntry) {
	x := svg.Margin()
	y := svg.Height() - svg.Margin()
	for _, e := range entries {
		svg.Rect(x, y, legendSquare, legendSquare, e.Color.SVG(), "none", 0, 1)
		svg.TextAnchored(x+legendSquare+legendPadding, y+legendSquare-2,
			e.Label, cfg.FontSizeLegend, cfg.ColorAxis.SVG(), "start")
		// Approximate advance; SVG has no measurement pass.
		x += legendSquare + legendPadding + float64(len(e.Label))*cfg.FontSizeLegend*0.6 + legendLine
	}
}

// formatValue renders an axis tick value with two decimals, keeping the
// sign explicit when the axis crosses zero.
func formatValue(v float64, signed bool) string {
	if signed {
		return fmt.Sprintf("%+.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
