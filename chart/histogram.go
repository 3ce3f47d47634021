package chart

import (
	"fmt"
	"math"

	"github.com/vizgo/viz"
)

// Histogram bins raw values into equal-width intervals and plots the
// frequency of each bin as an outlined bar. Bins are recomputed from
// the full dataset on every draw, so values added after earlier values
// widened the range are binned consistently.
type Histogram struct {
	Title  string
	XLabel string
	YLabel string
	Bins   int
	Color  viz.RGB

	cfg  viz.FigureConfig
	data []float64
}

// NewHistogram creates an empty histogram with the given bin count.
func NewHistogram(title, xLabel, yLabel string, bins int, col viz.RGB, cfg viz.FigureConfig) *Histogram {
	return &Histogram{Title: title, XLabel: xLabel, YLabel: yLabel, Bins: bins, Color: col, cfg: cfg}
}

// AddData appends one value.
func (h *Histogram) AddData(v float64) {
	h.data = append(h.data, v)
}

// AddDataSlice appends a batch of values.
func (h *Histogram) AddDataSlice(vs []float64) {
	h.data = append(h.data, vs...)
}

// Data returns the raw values in insertion order.
func (h *Histogram) Data() []float64 { return h.data }

// Config returns the histogram's figure configuration.
func (h *Histogram) Config() *viz.FigureConfig { return &h.cfg }

// BinCounts computes the frequency of each bin from the full dataset.
// The returned start and width describe the bin edges: bin i covers
// [start+i*width, start+(i+1)*width), with the final bin closed on the
// right so the maximum value is counted.
func (h *Histogram) BinCounts() (counts []float64, start, width float64) {
	counts = make([]float64, h.Bins)
	if len(h.data) == 0 || h.Bins <= 0 {
		return counts, 0, 0
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range h.data {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	width = (max - min) / float64(h.Bins)
	if width == 0 {
		counts[0] = float64(len(h.data))
		return counts, min, 0
	}

	for _, v := range h.data {
		i := int((v - min) / width)
		if i >= h.Bins {
			i = h.Bins - 1
		}
		counts[i]++
	}
	return counts, min, width
}

// Draw renders the histogram onto a raster canvas.
func (h *Histogram) Draw(c *viz.PixelCanvas) error {
	if err := preflight(&h.cfg); err != nil {
		return err
	}
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &h.cfg, width/2, margin/2, h.Title); err != nil {
		return err
	}

	counts, binStart, binWidth := h.BinCounts()
	yMax := 0.0
	for _, f := range counts {
		yMax = math.Max(yMax, f)
	}

	scaleX := float64(width-2*margin) / float64(max(h.Bins, 1))
	scaleY := viz.Scale(0, yMax, height, margin, 1)

	DrawGrid(c, &h.cfg)

	originX := margin
	originY := height - margin

	for i, freq := range counts {
		barHeight := int(freq * scaleY)
		left := originX + int(float64(i)*scaleX)
		right := left + int(scaleX)

		for x := left; x <= right; x++ {
			for y := originY - barHeight; y < originY; y++ {
				c.SetPixel(x, y, h.Color)
			}
		}
		// Black outline on the left, right and top edges.
		for y := originY - barHeight; y < originY; y++ {
			c.SetPixel(left, y, viz.Black)
			c.SetPixel(right, y, viz.Black)
		}
		for x := left; x <= right; x++ {
			c.SetPixel(x, originY-barHeight, viz.Black)
		}
	}

	// Tick labels sit on the bin edges rather than on even steps.
	for i := 0; i <= h.Bins; i++ {
		edgeX := originX + int(float64(i)*scaleX)
		edgeValue := binStart + float64(i)*binWidth
		c.SetPixel(edgeX, originY, viz.Black)
		if err := DrawAxisValue(c, &h.cfg, edgeX, originY+10,
			fmt.Sprintf("%.1f", edgeValue), AxisX); err != nil {
			return err
		}
	}

	ticks := h.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		v := yMax * float64(i) / float64(ticks)
		ty := originY - int(v*scaleY)
		c.SetPixel(originX, ty, viz.Black)
		if err := DrawAxisValue(c, &h.cfg, originX-10, ty,
			fmt.Sprintf("%.1f", v), AxisY); err != nil {
			return err
		}
	}

	if err := DrawLabel(c, &h.cfg, width-margin/2, originY, h.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &h.cfg, margin, margin/2, h.YLabel); err != nil {
		return err
	}

	c.FillVertical(margin, viz.Black)
	c.FillVertical(width-margin, viz.Black)
	c.FillHorizontal(height-margin, viz.Black)
	c.FillHorizontal(margin, viz.Black)
	return nil
}

// DrawLegend is a no-op: a histogram has a single series.
func (h *Histogram) DrawLegend(c *viz.PixelCanvas) error { return nil }

// DrawSVG renders the histogram as SVG fragments.
func (h *Histogram) DrawSVG(svg *viz.SVGCanvas) error {
	width := svg.Width()
	height := svg.Height()
	margin := svg.Margin()

	svg.Rect(0, 0, width, height, "white", "black", 2, 1)
	svg.Text(width/2, margin/2, h.Title, svgFontSize*2, "black")
	svg.Grid(margin, width-margin, margin, height-margin,
		h.cfg.NumAxisTicks, h.cfg.NumAxisTicks, "lightgray")

	counts, binStart, binWidth := h.BinCounts()
	yMax := 0.0
	for _, f := range counts {
		yMax = math.Max(yMax, f)
	}
	if yMax == 0 {
		yMax = 1
	}

	scaleX := (width - 2*margin) / float64(max(h.Bins, 1))
	scaleY := (height - 2*margin) / yMax

	for i, freq := range counts {
		barH := freq * scaleY
		left := margin + float64(i)*scaleX
		svg.Rect(left, height-margin-barH, scaleX, barH, h.Color.SVG(), "black", 1, 1)
	}

	for i := 0; i <= h.Bins; i++ {
		x := margin + float64(i)*scaleX
		svg.Text(x, height-margin+svgFontSize*1.5,
			fmt.Sprintf("%.1f", binStart+float64(i)*binWidth), svgFontSize, "black")
	}
	ticks := h.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		v := yMax * float64(i) / float64(ticks)
		y := height - margin - v*scaleY
		svg.TextAnchored(margin-5, y+svgFontSize*0.3,
			fmt.Sprintf("%.1f", v), svgFontSize, "black", "end")
	}

	svg.Line(margin, height-margin, width-margin, height-margin, "black", 2)
	svg.Line(margin, margin, margin, height-margin, "black", 2)

	svg.Text(width/2, height-margin/3, h.XLabel, svgFontSize*1.5, "black")
	svg.TextRotated(margin/3, height/2, h.YLabel, svgFontSize*1.5, "black", -90)
	return nil
}
