package chart

import "github.com/vizgo/viz"

// Dataset is a labeled series of data points. Concrete datasets add
// the appearance knobs their chart type understands (color, line style,
// marker, fill alpha).
type Dataset interface {
	// Points returns the series in insertion order. The slice is owned
	// by the dataset; callers must not modify it.
	Points() []viz.Point

	// AddPoint appends a data point to the series.
	AddPoint(x, y float64)
}

// series is the shared storage behind every concrete dataset.
type series struct {
	points []viz.Point
}

func (s *series) Points() []viz.Point { return s.points }

func (s *series) AddPoint(x, y float64) {
	s.points = append(s.points, viz.Pt(x, y))
}

// CartesianDataset is a polyline series for cartesian and quadrant
// graphs.
type CartesianDataset struct {
	series
	Color viz.RGB
	Label string
	Style viz.LineStyle
}

// NewCartesianDataset returns an empty series drawn as a solid line.
func NewCartesianDataset(label string, col viz.RGB) *CartesianDataset {
	return &CartesianDataset{Label: label, Color: col, Style: viz.Solid()}
}

// LineDataset is a polyline series for line graphs.
type LineDataset struct {
	series
	Color viz.RGB
	Label string
	Style viz.LineStyle
}

// NewLineDataset returns an empty series drawn as a solid line.
func NewLineDataset(label string, col viz.RGB) *LineDataset {
	return &LineDataset{Label: label, Color: col, Style: viz.Solid()}
}

// AreaDataset is a series whose region down to the x axis is filled
// with Alpha-blended color.
type AreaDataset struct {
	series
	Color viz.RGB
	Label string
	Alpha float64
}

// NewAreaDataset returns an empty series filled at the given opacity.
func NewAreaDataset(label string, col viz.RGB, alpha float64) *AreaDataset {
	return &AreaDataset{Label: label, Color: col, Alpha: alpha}
}

// BarDataset is a series of (category, value) bars. The category is a
// string, so points are stored as values only; Data pairs them up.
type BarDataset struct {
	Label string
	Color viz.RGB
	Data  []BarValue
}

// BarValue is one bar: a category name and its height.
type BarValue struct {
	Category string
	Value    float64
}

// NewBarDataset returns an empty bar series.
func NewBarDataset(label string, col viz.RGB) *BarDataset {
	return &BarDataset{Label: label, Color: col}
}

// AddData appends a bar to the series.
func (d *BarDataset) AddData(category string, value float64) {
	d.Data = append(d.Data, BarValue{Category: category, Value: value})
}

// ScatterDataset is a series of discrete points stamped with a marker.
type ScatterDataset struct {
	series
	Color  viz.RGB
	Label  string
	Marker viz.Marker
}

// NewScatterDataset returns an empty series stamped with 5-pixel
// circles.
func NewScatterDataset(label string, col viz.RGB) *ScatterDataset {
	return &ScatterDataset{Label: label, Color: col, Marker: viz.Circle(5)}
}
