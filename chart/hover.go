package chart

import (
	"math"

	"github.com/vizgo/viz"
)

// Hoverable is the query surface interactive hosts use to resolve a
// cursor position against a chart. Both methods are pure: they share
// the mapping the chart draws with but never touch the canvas pixels.
type Hoverable interface {
	// FindClosestPoint returns the data point nearest to a canvas
	// position, with its distance in data units. ok is false when the
	// chart has no points.
	FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (p viz.Point, dist float64, ok bool)

	// ToCanvasCoordinates maps a data point to canvas pixel
	// coordinates.
	ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (px, py int)
}

// closestPoint resolves a cursor position to data space through m and
// returns the nearest of the given points.
func closestPoint(m viz.Mapping, pointSets [][]viz.Point, mouseX, mouseY int) (viz.Point, float64, bool) {
	mx, my := m.ToData(mouseX, mouseY)
	cursor := viz.Pt(mx, my)

	best := viz.Point{}
	bestDist := math.Inf(1)
	found := false
	for _, pts := range pointSets {
		for _, p := range pts {
			if d := cursor.Distance(p); d < bestDist {
				best, bestDist = p, d
				found = true
			}
		}
	}
	return best, bestDist, found
}

func cartesianPointSets(datasets []*CartesianDataset) [][]viz.Point {
	sets := make([][]viz.Point, len(datasets))
	for i, d := range datasets {
		sets[i] = d.Points()
	}
	return sets
}

// FindClosestPoint returns the dataset point nearest to the cursor.
func (g *CartesianGraph) FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (viz.Point, float64, bool) {
	return closestPoint(g.mapping(c), cartesianPointSets(g.datasets), mouseX, mouseY)
}

// ToCanvasCoordinates maps a data point to canvas pixel coordinates.
func (g *CartesianGraph) ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (int, int) {
	return g.mapping(c).ToPixel(x, y)
}

// FindClosestPoint returns the dataset point nearest to the cursor.
func (g *LineGraph) FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (viz.Point, float64, bool) {
	sets := make([][]viz.Point, len(g.datasets))
	for i, d := range g.datasets {
		sets[i] = d.Points()
	}
	return closestPoint(g.mapping(c), sets, mouseX, mouseY)
}

// ToCanvasCoordinates maps a data point to canvas pixel coordinates.
func (g *LineGraph) ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (int, int) {
	return g.mapping(c).ToPixel(x, y)
}

// FindClosestPoint returns the dataset point nearest to the cursor.
func (g *Quadrant1Graph) FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (viz.Point, float64, bool) {
	return closestPoint(g.mapping(c), cartesianPointSets(g.datasets), mouseX, mouseY)
}

// ToCanvasCoordinates maps a data point to canvas pixel coordinates.
func (g *Quadrant1Graph) ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (int, int) {
	return g.mapping(c).ToPixel(x, y)
}

// FindClosestPoint returns the dataset point nearest to the cursor.
func (ch *AreaChart) FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (viz.Point, float64, bool) {
	sets := make([][]viz.Point, len(ch.datasets))
	for i, d := range ch.datasets {
		sets[i] = d.Points()
	}
	return closestPoint(ch.mapping(c), sets, mouseX, mouseY)
}

// ToCanvasCoordinates maps a data point to canvas pixel coordinates.
func (ch *AreaChart) ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (int, int) {
	return ch.mapping(c).ToPixel(x, y)
}

// FindClosestPoint returns the dataset point nearest to the cursor.
func (g *ScatterGraph) FindClosestPoint(mouseX, mouseY int, c *viz.PixelCanvas) (viz.Point, float64, bool) {
	sets := make([][]viz.Point, len(g.datasets))
	for i, d := range g.datasets {
		sets[i] = d.Points()
	}
	return closestPoint(g.mapping(c), sets, mouseX, mouseY)
}

// ToCanvasCoordinates maps a data point to canvas pixel coordinates.
func (g *ScatterGraph) ToCanvasCoordinates(x, y float64, c *viz.PixelCanvas) (int, int) {
	return g.mapping(c).ToPixel(x, y)
}
