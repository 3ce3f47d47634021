package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizgo/viz"
)

// TestHistogramBinCounts verifies even distribution across bins and the
// right-closed final bin.
func TestHistogramBinCounts(t *testing.T) {
	h := NewHistogram("", "", "", 4, viz.Gray, viz.DefaultConfig())
	h.AddDataSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	counts, start, width := h.BinCounts()

	assert.Equal(t, 0.0, start)
	assert.InDelta(t, 1.75, width, 1e-9)
	// Bins: [0,1.75) [1.75,3.5) [3.5,5.25) [5.25,7]
	assert.Equal(t, []float64{2, 2, 2, 2}, counts)
}

// TestHistogramBinCounts_MaxValue verifies the maximum lands in the
// last bin instead of overflowing.
func TestHistogramBinCounts_MaxValue(t *testing.T) {
	h := NewHistogram("", "", "", 3, viz.Gray, viz.DefaultConfig())
	h.AddDataSlice([]float64{0, 10})

	counts, _, _ := h.BinCounts()
	assert.Equal(t, 1.0, counts[2])
}

// TestHistogramBinCounts_LateOutlier verifies bins reflect the full
// dataset even when a late value widens the range.
func TestHistogramBinCounts_LateOutlier(t *testing.T) {
	h := NewHistogram("", "", "", 2, viz.Gray, viz.DefaultConfig())
	h.AddDataSlice([]float64{1, 2, 3})
	// Values 1..3 currently span bins [1,2) and [2,3]. The outlier
	// stretches the range to [1,100]; the three early values must all
	// land in the first bin afterwards.
	h.AddData(100)

	counts, start, width := h.BinCounts()
	assert.Equal(t, 1.0, start)
	assert.InDelta(t, 49.5, width, 1e-9)
	assert.Equal(t, []float64{3, 1}, counts)
}

// TestHistogramBinCounts_Uniform verifies identical values collapse
// into the first bin without dividing by zero.
func TestHistogramBinCounts_Uniform(t *testing.T) {
	h := NewHistogram("", "", "", 5, viz.Gray, viz.DefaultConfig())
	h.AddDataSlice([]float64{7, 7, 7})

	counts, start, width := h.BinCounts()
	assert.Equal(t, 7.0, start)
	assert.Equal(t, 0.0, width)
	assert.Equal(t, 3.0, counts[0])
}

// TestHistogramBinCounts_Empty verifies the zero-data case.
func TestHistogramBinCounts_Empty(t *testing.T) {
	h := NewHistogram("", "", "", 4, viz.Gray, viz.DefaultConfig())

	counts, start, width := h.BinCounts()
	assert.Equal(t, []float64{0, 0, 0, 0}, counts)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 0.0, width)
}
