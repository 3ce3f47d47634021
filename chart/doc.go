// Package chart implements the chart types rendered by viz: cartesian
// and first-quadrant graphs, line graphs, area charts, grouped bar
// charts, histograms, pie charts and scatter graphs.
//
// Every chart satisfies the Drawer interface: it paints a complete
// frame onto a borrowed viz.PixelCanvas or viz.SVGCanvas and never
// retains the surface. Charts that plot discrete points also satisfy
// Hoverable, the pure query surface consumed by interactive hosts.
//
// Shared furniture (grid, axes, titles, tick labels, legends) is
// provided as free functions taking the figure configuration
// explicitly, so chart types compose them rather than duplicating
// layout math.
package chart
