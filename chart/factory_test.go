package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizgo/viz"
)

// TestNew verifies each kind produces its chart and a working Drawer.
func TestNew(t *testing.T) {
	cfg := viz.DefaultConfig()

	kinds := []FigureKind{
		KindGroupBarChartVertical,
		KindGroupBarChartHorizontal,
		KindCartesianGraph,
		KindLineGraph,
		KindPieChart,
		KindScatterGraph,
		KindAreaChart,
		KindHistogram,
		KindQuadrant1Graph,
	}
	for _, kind := range kinds {
		f := New(kind, cfg)
		require.NotNil(t, f)
		assert.Equal(t, kind, f.Kind)
		assert.NotNil(t, f.Drawer(), "kind %v has no drawer", kind)
	}
}

// TestNew_Orientation verifies the two bar kinds differ only in
// orientation.
func TestNew_Orientation(t *testing.T) {
	cfg := viz.DefaultConfig()

	v := New(KindGroupBarChartVertical, cfg)
	h := New(KindGroupBarChartHorizontal, cfg)

	require.NotNil(t, v.GroupBarChart)
	require.NotNil(t, h.GroupBarChart)
	assert.Equal(t, Vertical, v.GroupBarChart.Orientation)
	assert.Equal(t, Horizontal, h.GroupBarChart.Orientation)
}

// TestFigureDrawer_Uninitialized verifies a zero Figure yields nil.
func TestFigureDrawer_Uninitialized(t *testing.T) {
	var f Figure
	f.Kind = KindPieChart
	assert.Nil(t, f.Drawer())
}

// TestNew_ConfigPropagates verifies the configuration reaches the
// concrete chart.
func TestNew_ConfigPropagates(t *testing.T) {
	cfg := viz.DefaultConfig()
	cfg.NumAxisTicks = 7

	f := New(KindScatterGraph, cfg)
	require.NotNil(t, f.ScatterGraph)
	assert.Equal(t, 7, f.Drawer().Config().NumAxisTicks)
}
