// Package viz provides a small 2D charting library for Go.
//
// # Overview
//
// viz renders numeric datasets to two kinds of surfaces: a raster
// PixelCanvas (a plain RGB byte buffer that encodes to PNG, JPEG, BMP or
// TIFF) and a vector SVGCanvas (an ordered accumulator of SVG fragments).
// The chart types themselves live in the chart subpackage; this package
// holds the drawing core they share.
//
// # Quick Start
//
//	import (
//	    "github.com/vizgo/viz"
//	    "github.com/vizgo/viz/chart"
//	)
//
//	cfg := viz.DefaultConfig()
//	cfg.SetFontPaths("fonts/Go-Regular.ttf", "fonts/Go-Regular.ttf")
//
//	g := chart.NewCartesianGraph("y = x^2", "x", "y", cfg)
//	ds := chart.NewCartesianDataset("squares", viz.Blue)
//	for x := -5.0; x <= 5.0; x += 0.5 {
//	    ds.AddPoint(x, x*x)
//	}
//	g.AddDataset(ds)
//
//	canvas := viz.NewPixelCanvas(800, 600, viz.White, 60)
//	if err := g.Draw(canvas); err != nil {
//	    log.Fatal(err)
//	}
//	if err := canvas.Save("squares.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Canvas coordinates follow the usual raster convention: origin (0,0) at
// the top-left, x increasing right, y increasing down. Data space is
// mapped into the drawable rectangle (canvas minus margins) by Mapping,
// with the y axis flipped so larger values plot higher.
//
// # Rendering Model
//
// A draw pass is single-threaded and runs to completion: the chart
// borrows the canvas, paints a full frame, and returns it. Out-of-range
// pixel writes are silently dropped so callers may overshoot margins
// without per-call bounds checks. Misconfiguration (missing fonts) is
// reported before any pixel is touched.
package viz

// Version is the current version of the library.
const Version = "0.2.0"
