package chart

import "github.com/vizgo/viz"

// FigureKind enumerates the chart types the factory can build.
type FigureKind int

const (
	KindGroupBarChartVertical FigureKind = iota
	KindGroupBarChartHorizontal
	KindCartesianGraph
	KindLineGraph
	KindPieChart
	KindScatterGraph
	KindAreaChart
	KindHistogram
	KindQuadrant1Graph
)

// Figure is a tagged union over the chart types. Exactly one field is
// non-nil, matching Kind; the typed accessors let callers reach the
// concrete chart without a type switch.
type Figure struct {
	Kind FigureKind

	GroupBarChart  *GroupBarChart
	CartesianGraph *CartesianGraph
	LineGraph      *LineGraph
	PieChart       *PieChart
	ScatterGraph   *ScatterGraph
	AreaChart      *AreaChart
	Histogram      *Histogram
	Quadrant1Graph *Quadrant1Graph
}

// New builds an empty figure of the given kind with placeholder title
// and labels. Callers fill in datasets and metadata through the
// concrete chart field.
func New(kind FigureKind, cfg viz.FigureConfig) *Figure {
	f := &Figure{Kind: kind}
	switch kind {
	case KindGroupBarChartVertical:
		f.GroupBarChart = NewGroupBarChart("", "", "", Vertical, cfg)
	case KindGroupBarChartHorizontal:
		f.GroupBarChart = NewGroupBarChart("", "", "", Horizontal, cfg)
	case KindCartesianGraph:
		f.CartesianGraph = NewCartesianGraph("", "", "", cfg)
	case KindLineGraph:
		f.LineGraph = NewLineGraph("", "", "", cfg)
	case KindPieChart:
		f.PieChart = NewPieChart("", cfg)
	case KindScatterGraph:
		f.ScatterGraph = NewScatterGraph("", "", "", cfg)
	case KindAreaChart:
		f.AreaChart = NewAreaChart("", "", "", cfg)
	case KindHistogram:
		f.Histogram = NewHistogram("", "", "", 10, viz.Blue, cfg)
	case KindQuadrant1Graph:
		f.Quadrant1Graph = NewQuadrant1Graph("", "", "", cfg)
	}
	return f
}

// Drawer returns the figure's chart as a Drawer, or nil for an
// uninitialized figure.
func (f *Figure) Drawer() Drawer {
	switch f.Kind {
	case KindGroupBarChartVertical, KindGroupBarChartHorizontal:
		if f.GroupBarChart != nil {
			return f.GroupBarChart
		}
	case KindCartesianGraph:
		if f.CartesianGraph != nil {
			return f.CartesianGraph
		}
	case KindLineGraph:
		if f.LineGraph != nil {
			return f.LineGraph
		}
	case KindPieChart:
		if f.PieChart != nil {
			return f.PieChart
		}
	case KindScatterGraph:
		if f.ScatterGraph != nil {
			return f.ScatterGraph
		}
	case KindAreaChart:
		if f.AreaChart != nil {
			return f.AreaChart
		}
	case KindHistogram:
		if f.Histogram != nil {
			return f.Histogram
		}
	case KindQuadrant1Graph:
		if f.Quadrant1Graph != nil {
			return f.Quadrant1Graph
		}
	}
	return nil
}
