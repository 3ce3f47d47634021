package chart

import (
	"fmt"
	"sort"

	"github.com/vizgo/viz"
)

// Orientation selects which way grouped bars grow.
type Orientation int

const (
	// Vertical bars grow upward from the bottom axis.
	Vertical Orientation = iota
	// Horizontal bars grow rightward from the left axis.
	Horizontal
)

// groupFactor is the share of each category slot occupied by its bar
// group; the rest is inter-group spacing.
const groupFactor = 0.8

// GroupBarChart plots one bar per dataset per category, grouped by
// category along the base axis. Categories are the sorted union of
// every dataset's category names; a dataset without a value for some
// category simply leaves a gap in that group.
type GroupBarChart struct {
	Title       string
	XLabel      string
	YLabel      string
	Orientation Orientation

	cfg      viz.FigureConfig
	datasets []*BarDataset
}

// NewGroupBarChart creates an empty grouped bar chart.
func NewGroupBarChart(title, xLabel, yLabel string, o Orientation, cfg viz.FigureConfig) *GroupBarChart {
	return &GroupBarChart{Title: title, XLabel: xLabel, YLabel: yLabel, Orientation: o, cfg: cfg}
}

// AddDataset appends a bar series to the chart.
func (ch *GroupBarChart) AddDataset(d *BarDataset) {
	ch.datasets = append(ch.datasets, d)
}

// Config returns the chart's figure configuration.
func (ch *GroupBarChart) Config() *viz.FigureConfig { return &ch.cfg }

// categories returns the sorted union of category names across all
// datasets.
func (ch *GroupBarChart) categories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, d := range ch.datasets {
		for _, v := range d.Data {
			if !seen[v.Category] {
				seen[v.Category] = true
				cats = append(cats, v.Category)
			}
		}
	}
	sort.Strings(cats)
	return cats
}

// maxValue returns the largest bar value, at least zero.
func (ch *GroupBarChart) maxValue() float64 {
	max := 0.0
	for _, d := range ch.datasets {
		for _, v := range d.Data {
			if v.Value > max {
				max = v.Value
			}
		}
	}
	return max
}

func (d *BarDataset) value(category string) (float64, bool) {
	for _, v := range d.Data {
		if v.Category == category {
			return v.Value, true
		}
	}
	return 0, false
}

// Draw renders the chart onto a raster canvas in the configured
// orientation.
func (ch *GroupBarChart) Draw(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	if ch.Orientation == Horizontal {
		return ch.drawHorizontal(c)
	}
	return ch.drawVertical(c)
}

func (ch *GroupBarChart) drawVertical(c *viz.PixelCanvas) error {
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &ch.cfg, width/2, margin/2, ch.Title); err != nil {
		return err
	}

	cats := ch.categories()
	valMax := ch.maxValue()
	slot := ch.slotExtent(width, margin, len(cats))
	scaleY := viz.Scale(0, valMax, height, margin, 1)
	originY := height - margin

	DrawGrid(c, &ch.cfg)
	c.FillVertical(margin, ch.cfg.ColorAxis)
	c.FillVertical(width-margin, ch.cfg.ColorAxis)
	c.FillHorizontal(height-margin, ch.cfg.ColorAxis)
	c.FillHorizontal(margin, ch.cfg.ColorAxis)

	if err := DrawLabel(c, &ch.cfg, width-margin/2, originY, ch.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &ch.cfg, margin, margin/2, ch.YLabel); err != nil {
		return err
	}

	ticks := ch.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		v := valMax / float64(ticks) * float64(i)
		ty := originY - int(v*scaleY)
		if err := DrawAxisValue(c, &ch.cfg, margin-5, ty,
			formatValue(v, false), AxisY); err != nil {
			return err
		}
	}

	groupWidth := slot * groupFactor
	barWidth := groupWidth
	if n := len(ch.datasets); n > 0 {
		barWidth = groupWidth / float64(n)
	}

	for gi, cat := range cats {
		centerX := margin + int((float64(gi)+0.5)*slot)
		if err := DrawAxisValue(c, &ch.cfg, centerX, originY, cat, AxisX); err != nil {
			return err
		}

		for di, d := range ch.datasets {
			v, ok := d.value(cat)
			if !ok {
				continue
			}
			barHeight := int(v * scaleY)
			left := centerX - int(groupWidth/2) + int(float64(di)*barWidth)
			right := left + int(barWidth)
			for x := left; x <= right; x++ {
				for y := originY - barHeight; y < originY; y++ {
					c.SetPixel(x, y, d.Color)
				}
			}
		}
	}
	return ch.DrawLegend(c)
}

func (ch *GroupBarChart) drawHorizontal(c *viz.PixelCanvas) error {
	c.Clear()

	width, height, margin := c.Width(), c.Height(), c.Margin()
	if err := DrawTitle(c, &ch.cfg, width/2, margin/2, ch.Title); err != nil {
		return err
	}

	cats := ch.categories()
	valMax := ch.maxValue()
	slot := ch.slotExtent(height, margin, len(cats))
	scaleX := viz.Scale(0, valMax, width, margin, 1)
	originX := margin
	originY := height - margin

	DrawGrid(c, &ch.cfg)

	if err := DrawLabel(c, &ch.cfg, width-margin/2, originY, ch.XLabel); err != nil {
		return err
	}
	if err := DrawLabel(c, &ch.cfg, margin, margin/2, ch.YLabel); err != nil {
		return err
	}

	ticks := ch.cfg.NumAxisTicks
	for i := 0; i <= ticks; i++ {
		v := valMax / float64(ticks) * float64(i)
		tx := originX + int(v*scaleX)
		if err := DrawAxisValue(c, &ch.cfg, tx, originY,
			formatValue(v, false), AxisX); err != nil {
			return err
		}
	}

	groupHeight := slot * groupFactor
	barHeight := groupHeight
	if n := len(ch.datasets); n > 0 {
		barHeight = groupHeight / float64(n)
	}

	for gi, cat := range cats {
		centerY := originY - int((float64(gi)+0.5)*slot)
		if err := DrawAxisValue(c, &ch.cfg, originX-10, centerY, cat, AxisY); err != nil {
			return err
		}

		for di, d := range ch.datasets {
			v, ok := d.value(cat)
			if !ok {
				continue
			}
			barLen := int(v * scaleX)
			top := centerY - int(groupHeight/2) + int(float64(di)*barHeight)
			bottom := top + int(barHeight)
			for x := originX; x < originX+barLen; x++ {
				for y := top; y < bottom; y++ {
					c.SetPixel(x, y, d.Color)
				}
			}
		}
	}

	c.FillVertical(margin, ch.cfg.ColorAxis)
	c.FillHorizontal(height-margin, ch.cfg.ColorAxis)
	return ch.DrawLegend(c)
}

// slotExtent is the base-axis extent reserved per category.
func (ch *GroupBarChart) slotExtent(extent, margin, count int) float64 {
	if count == 0 {
		return float64(extent - 2*margin)
	}
	return float64(extent-2*margin) / float64(count)
}

// DrawLegend renders one legend entry per dataset along the bottom
// margin.
func (ch *GroupBarChart) DrawLegend(c *viz.PixelCanvas) error {
	if err := preflight(&ch.cfg); err != nil {
		return err
	}
	entries := make([]LegendEntry, len(ch.datasets))
	for i, d := range ch.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	return DrawLegendEntries(c, &ch.cfg, entries)
}

// DrawSVG renders the chart as SVG fragments.
func (ch *GroupBarChart) DrawSVG(svg *viz.SVGCanvas) error {
	width := svg.Width()
	height := svg.Height()
	margin := svg.Margin()

	svg.Rect(0, 0, width, height, "white", "black", 2, 1)
	svg.Text(width/2, margin/2, ch.Title, svgFontSize*2, "black")
	svg.Grid(margin, width-margin, margin, height-margin,
		ch.cfg.NumAxisTicks, ch.cfg.NumAxisTicks, "lightgray")

	cats := ch.categories()
	valMax := ch.maxValue()
	if valMax == 0 {
		valMax = 1
	}

	svg.Line(margin, height-margin, width-margin, height-margin, "black", 2)
	svg.Line(margin, margin, margin, height-margin, "black", 2)

	ticks := ch.cfg.NumAxisTicks
	barWidthOf := func(slot float64) float64 {
		w := slot * groupFactor
		if n := len(ch.datasets); n > 0 {
			w /= float64(n)
		}
		return w
	}

	switch ch.Orientation {
	case Vertical:
		slot := (width - 2*margin) / float64(max(len(cats), 1))
		scaleY := (height - 2*margin) / valMax
		barWidth := barWidthOf(slot)
		for gi, cat := range cats {
			centerX := margin + (float64(gi)+0.5)*slot
			svg.Text(centerX, height-margin+svgFontSize*1.5, cat, svgFontSize, "black")
			for di, d := range ch.datasets {
				v, ok := d.value(cat)
				if !ok {
					continue
				}
				barH := v * scaleY
				left := centerX - slot*groupFactor/2 + float64(di)*barWidth
				svg.Rect(left, height-margin-barH, barWidth, barH, d.Color.SVG(), "black", 0.5, 1)
			}
		}
		for i := 0; i <= ticks; i++ {
			v := valMax / float64(ticks) * float64(i)
			y := height - margin - v*scaleY
			svg.TextAnchored(margin-5, y+svgFontSize*0.3,
				fmt.Sprintf("%.1f", v), svgFontSize, "black", "end")
		}
	case Horizontal:
		slot := (height - 2*margin) / float64(max(len(cats), 1))
		scaleX := (width - 2*margin) / valMax
		barHeight := barWidthOf(slot)
		for gi, cat := range cats {
			centerY := height - margin - (float64(gi)+0.5)*slot
			svg.TextAnchored(margin-5, centerY+svgFontSize*0.3, cat, svgFontSize, "black", "end")
			for di, d := range ch.datasets {
				v, ok := d.value(cat)
				if !ok {
					continue
				}
				barW := v * scaleX
				top := centerY - slot*groupFactor/2 + float64(di)*barHeight
				svg.Rect(margin, top, barW, barHeight, d.Color.SVG(), "black", 0.5, 1)
			}
		}
		for i := 0; i <= ticks; i++ {
			v := valMax / float64(ticks) * float64(i)
			x := margin + v*scaleX
			svg.Text(x, height-margin+svgFontSize*1.5,
				fmt.Sprintf("%.1f", v), svgFontSize, "black")
		}
	}

	svg.Text(width/2, height-margin/3, ch.XLabel, svgFontSize*1.5, "black")
	svg.TextRotated(margin/3, height/2, ch.YLabel, svgFontSize*1.5, "black", -90)

	entries := make([]LegendEntry, len(ch.datasets))
	for i, d := range ch.datasets {
		entries[i] = LegendEntry{Label: d.Label, Color: d.Color}
	}
	svgLegendEntries(svg, &ch.cfg, entries)
	return nil
}
