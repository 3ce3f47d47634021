package viz

import (
	"math"
	"testing"
)

// TestRangeInclude verifies folding points widens the bounds.
func TestRangeInclude(t *testing.T) {
	r := NewRange()
	if !r.Empty() {
		t.Fatal("new range should be empty")
	}

	r.Include(2, -3)
	r.Include(-1, 5)

	if r.XMin != -1 || r.XMax != 2 || r.YMin != -3 || r.YMax != 5 {
		t.Errorf("range: got %+v", r)
	}
	if r.Empty() {
		t.Error("range with points reports empty")
	}
}

// TestRangeSymmetric verifies the larger absolute bound is mirrored.
func TestRangeSymmetric(t *testing.T) {
	r := NewRange()
	r.Include(-4, 1)
	r.Include(2, 7)

	r.Symmetric()

	if r.XMin != -4 || r.XMax != 4 {
		t.Errorf("x: got [%v, %v], want [-4, 4]", r.XMin, r.XMax)
	}
	if r.YMin != -7 || r.YMax != 7 {
		t.Errorf("y: got [%v, %v], want [-7, 7]", r.YMin, r.YMax)
	}
}

// TestRangeSymmetric_Empty verifies Symmetric leaves an empty range
// alone instead of mirroring infinities.
func TestRangeSymmetric_Empty(t *testing.T) {
	r := NewRange()
	r.Symmetric()
	if !r.Empty() {
		t.Errorf("empty range became non-empty: %+v", r)
	}
}

// TestScale verifies the linear factor over the drawable extent.
func TestScale(t *testing.T) {
	// (100 - 2*10) / (4 - 0) = 20
	if got := Scale(0, 4, 100, 10, 1); got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

// TestScale_ZeroRange verifies the fallback replaces a division by
// zero.
func TestScale_ZeroRange(t *testing.T) {
	got := Scale(3, 3, 100, 10, 1.5)
	if got != 1.5 {
		t.Errorf("got %v, want fallback 1.5", got)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("zero range produced %v", got)
	}
}

// TestMappingToPixel verifies corners of the data range land on the
// margins with the y axis flipped.
func TestMappingToPixel(t *testing.T) {
	r := Range{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	m := NewMapping(r, 100, 100, 10, 1)

	if x, y := m.ToPixel(0, 0); x != 10 || y != 90 {
		t.Errorf("(0,0): got (%d,%d), want (10,90)", x, y)
	}
	if x, y := m.ToPixel(10, 10); x != 90 || y != 10 {
		t.Errorf("(10,10): got (%d,%d), want (90,10)", x, y)
	}
	if x, y := m.ToPixel(5, 5); x != 50 || y != 50 {
		t.Errorf("(5,5): got (%d,%d), want (50,50)", x, y)
	}
}

// TestMappingRoundTrip verifies ToData inverts ToPixel within one
// pixel's worth of data units.
func TestMappingRoundTrip(t *testing.T) {
	r := Range{XMin: -3, XMax: 7, YMin: 2, YMax: 12}
	m := NewMapping(r, 640, 480, 50, 1)

	tolX := (r.XMax - r.XMin) / float64(640-2*50)
	tolY := (r.YMax - r.YMin) / float64(480-2*50)

	pts := []struct{ x, y float64 }{
		{-3, 2}, {7, 12}, {0, 5}, {1.5, 9.25}, {-2.75, 11.1},
	}
	for _, p := range pts {
		px, py := m.ToPixel(p.x, p.y)
		gx, gy := m.ToData(px, py)
		if math.Abs(gx-p.x) > tolX {
			t.Errorf("x round trip: %v -> %v (tolerance %v)", p.x, gx, tolX)
		}
		if math.Abs(gy-p.y) > tolY {
			t.Errorf("y round trip: %v -> %v (tolerance %v)", p.y, gy, tolY)
		}
	}
}

// TestMappingZeroRange verifies degenerate data never produces NaN or
// Inf coordinates.
func TestMappingZeroRange(t *testing.T) {
	r := Range{XMin: 5, XMax: 5, YMin: 5, YMax: 5}
	m := NewMapping(r, 100, 100, 10, 1)

	px, py := m.ToPixelF(5, 5)
	if math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0) {
		t.Errorf("degenerate mapping produced (%v, %v)", px, py)
	}

	x, y := m.ToData(50, 50)
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		t.Errorf("degenerate inverse produced (%v, %v)", x, y)
	}
}

// TestMappingOrigin verifies the origin lands midway for a symmetric
// range.
func TestMappingOrigin(t *testing.T) {
	r := Range{XMin: -5, XMax: 5, YMin: -5, YMax: 5}
	m := NewMapping(r, 200, 200, 20, 1)

	x, y := m.Origin()
	if x != 100 || y != 100 {
		t.Errorf("origin: got (%d,%d), want (100,100)", x, y)
	}
}
