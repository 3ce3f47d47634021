package viz

import "math"

// Range is the data-space extent of a chart: (min, max) per axis.
// The zero value of a fold is obtained from NewRange, whose infinities
// collapse on the first Include.
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewRange returns an empty range ready for folding points into.
func NewRange() Range {
	return Range{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
}

// Include widens the range to contain the point.
func (r *Range) Include(x, y float64) {
	r.XMin = math.Min(r.XMin, x)
	r.XMax = math.Max(r.XMax, x)
	r.YMin = math.Min(r.YMin, y)
	r.YMax = math.Max(r.YMax, y)
}

// IncludeOrigin widens the range to contain (0, 0).
func (r *Range) IncludeOrigin() {
	r.Include(0, 0)
}

// Empty reports whether no point has been folded in.
func (r Range) Empty() bool {
	return r.XMin > r.XMax || r.YMin > r.YMax
}

// Symmetric mirrors each axis around zero so the larger absolute bound
// wins: the origin ends up centered. Charts with centered axes
// (cartesian, line graph) apply this after folding their datasets.
func (r *Range) Symmetric() {
	if r.Empty() {
		return
	}
	if math.Abs(r.XMin) > math.Abs(r.XMax) {
		r.XMax = math.Abs(r.XMin)
	} else {
		r.XMin = -math.Abs(r.XMax)
	}
	if math.Abs(r.YMin) > math.Abs(r.YMax) {
		r.YMax = math.Abs(r.YMin)
	} else {
		r.YMin = -math.Abs(r.YMax)
	}
}

// Scale returns the linear factor mapping the data range [dataMin,
// dataMax] onto the drawable extent (surface extent minus both margins).
// A zero-width data range would produce an infinite scale; the
// caller-supplied fallback is returned instead.
func Scale(dataMin, dataMax float64, extent, margin int, fallback float64) float64 {
	if dataMax == dataMin {
		Logger().Warn("viz: zero-range axis, using fallback scale",
			"value", dataMin, "fallback", fallback)
		return fallback
	}
	return float64(extent-2*margin) / (dataMax - dataMin)
}

// Mapping is the affine transform from data space to pixel space for
// one canvas geometry. It is pure and cheap: charts recompute it on
// every draw rather than caching, so it can never disagree with the
// current data.
type Mapping struct {
	ScaleX, ScaleY float64
	xMin, yMin     float64
	height, margin int
}

// NewMapping builds the transform for a data range on a width x height
// canvas with the given margin. fallback substitutes for the scale of
// any axis whose data range is empty (see Scale).
func NewMapping(r Range, width, height, margin int, fallback float64) Mapping {
	m := Mapping{
		ScaleX: Scale(r.XMin, r.XMax, width, margin, fallback),
		ScaleY: Scale(r.YMin, r.YMax, height, margin, fallback),
		xMin:   r.XMin,
		yMin:   r.YMin,
		height: height,
		margin: margin,
	}
	Logger().Debug("viz: mapping computed",
		"scaleX", m.ScaleX, "scaleY", m.ScaleY,
		"xRange", r.XMax-r.XMin, "yRange", r.YMax-r.YMin)
	return m
}

// ToPixel maps a data point to integer canvas coordinates. The y axis
// is flipped: yMin lands on the bottom margin.
func (m Mapping) ToPixel(x, y float64) (px, py int) {
	fx, fy := m.ToPixelF(x, y)
	return int(fx), int(fy)
}

// ToPixelF is ToPixel without the integer truncation, for vector
// backends that keep fractional coordinates.
func (m Mapping) ToPixelF(x, y float64) (px, py float64) {
	px = float64(m.margin) + (x-m.xMin)*m.ScaleX
	py = float64(m.height-m.margin) - (y-m.yMin)*m.ScaleY
	return px, py
}

// ToData is the algebraic inverse of ToPixel, used by hover queries.
// For any pixel produced by ToPixel the round trip lands within one
// pixel's worth of data units (the truncation error). Degenerate scales
// map back to the axis minimum.
func (m Mapping) ToData(px, py int) (x, y float64) {
	x, y = m.xMin, m.yMin
	if m.ScaleX != 0 {
		x = m.xMin + (float64(px)-float64(m.margin))/m.ScaleX
	}
	if m.ScaleY != 0 {
		y = m.yMin + (float64(m.height-m.margin)-float64(py))/m.ScaleY
	}
	return x, y
}

// Origin returns the canvas position of the data-space origin.
func (m Mapping) Origin() (px, py int) {
	return m.ToPixel(0, 0)
}
