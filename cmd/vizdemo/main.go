// Command vizdemo renders one example of every chart type to PNG and
// SVG files in the output directory.
//
// Usage:
//
//	vizdemo -font-label fonts/Go-Regular.ttf -font-title fonts/Go-Bold.ttf -out out/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/vizgo/viz"
	"github.com/vizgo/viz/chart"
)

func main() {
	var (
		fontLabel  = flag.String("font-label", "", "path to the label font (TTF/OTF)")
		fontTitle  = flag.String("font-title", "", "path to the title font (TTF/OTF)")
		configPath = flag.String("config", "", "optional TOML figure configuration")
		outDir     = flag.String("out", "out", "output directory")
		width      = flag.Int("width", 800, "canvas width in pixels")
		height     = flag.Int("height", 600, "canvas height in pixels")
		margin     = flag.Int("margin", 100, "canvas margin in pixels")
	)
	flag.Parse()

	viz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := viz.DefaultConfig()
	if *configPath != "" {
		loaded, err := viz.LoadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *fontLabel != "" || *fontTitle != "" {
		cfg.SetFontPaths(*fontLabel, *fontTitle)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(err)
	}

	charts := []struct {
		name   string
		drawer chart.Drawer
	}{
		{"cartesian", demoCartesian(cfg)},
		{"linegraph", demoLineGraph(cfg)},
		{"quadrant1", demoQuadrant(cfg)},
		{"area", demoArea(cfg)},
		{"bars_vertical", demoBars(cfg, chart.Vertical)},
		{"bars_horizontal", demoBars(cfg, chart.Horizontal)},
		{"histogram", demoHistogram(cfg)},
		{"pie", demoPie(cfg)},
		{"scatter", demoScatter(cfg)},
	}

	for _, c := range charts {
		canvas := viz.NewPixelCanvas(*width, *height, cfg.ColorBackground, *margin)
		if err := c.drawer.Draw(canvas); err != nil {
			fatal(fmt.Errorf("%s: %w", c.name, err))
		}
		pngPath := filepath.Join(*outDir, c.name+".png")
		if err := canvas.Save(pngPath); err != nil {
			fatal(fmt.Errorf("%s: %w", c.name, err))
		}

		svg := viz.NewSVGCanvas(float64(*width), float64(*height), "white", float64(*margin))
		if err := c.drawer.DrawSVG(svg); err != nil {
			fatal(fmt.Errorf("%s: %w", c.name, err))
		}
		svgPath := filepath.Join(*outDir, c.name+".svg")
		if err := svg.Save(svgPath); err != nil {
			fatal(fmt.Errorf("%s: %w", c.name, err))
		}

		fmt.Printf("wrote %s and %s\n", pngPath, svgPath)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "vizdemo:", err)
	os.Exit(1)
}

func demoCartesian(cfg viz.FigureConfig) chart.Drawer {
	g := chart.NewCartesianGraph("Waves", "x", "y", cfg)

	sin := chart.NewCartesianDataset("sin", viz.Red)
	cos := chart.NewCartesianDataset("cos", viz.Blue)
	cos.Style = viz.Dashed(4)
	for x := -2 * math.Pi; x <= 2*math.Pi; x += 0.05 {
		sin.AddPoint(x, math.Sin(x))
		cos.AddPoint(x, math.Cos(x))
	}
	g.AddDataset(sin)
	g.AddDataset(cos)
	return g
}

func demoLineGraph(cfg viz.FigureConfig) chart.Drawer {
	g := chart.NewLineGraph("Damped Oscillation", "t", "amplitude", cfg)

	d := chart.NewLineDataset("exp(-t/4) sin(2t)", viz.Magenta)
	d.Style = viz.Dotted(2)
	for t := -8.0; t <= 8.0; t += 0.05 {
		d.AddPoint(t, math.Exp(-math.Abs(t)/4)*math.Sin(2*t))
	}
	g.AddDataset(d)
	return g
}

func demoQuadrant(cfg viz.FigureConfig) chart.Drawer {
	g := chart.NewQuadrant1Graph("Growth", "n", "cost", cfg)

	d := chart.NewCartesianDataset("n log n", viz.Green)
	for n := 1.0; n <= 64; n++ {
		d.AddPoint(n, n*math.Log2(n))
	}
	g.AddDataset(d)
	return g
}

func demoArea(cfg viz.FigureConfig) chart.Drawer {
	ch := chart.NewAreaChart("Throughput", "hour", "requests", cfg)

	d := chart.NewAreaDataset("served", viz.Cyan, 0.4)
	for h := 0.0; h <= 24; h++ {
		d.AddPoint(h, 50+40*math.Sin(h/24*2*math.Pi)+10*math.Sin(h))
	}
	ch.AddDataset(d)
	return ch
}

func demoBars(cfg viz.FigureConfig, o chart.Orientation) chart.Drawer {
	ch := chart.NewGroupBarChart("Quarterly Revenue", "quarter", "revenue", o, cfg)

	north := chart.NewBarDataset("north", viz.Blue)
	south := chart.NewBarDataset("south", viz.Yellow)
	for i, q := range []string{"Q1", "Q2", "Q3", "Q4"} {
		north.AddData(q, 40+float64(i)*12)
		south.AddData(q, 55-float64(i)*7)
	}
	ch.AddDataset(north)
	ch.AddDataset(south)
	return ch
}

func demoHistogram(cfg viz.FigureConfig) chart.Drawer {
	h := chart.NewHistogram("Latency Distribution", "ms", "count", 12, viz.Gray, cfg)
	// Deterministic pseudo-random sample.
	seed := 12345.0
	for i := 0; i < 500; i++ {
		seed = math.Mod(seed*16807, 2147483647)
		u := seed / 2147483647
		h.AddData(20 + 60*u*u)
	}
	return h
}

func demoPie(cfg viz.FigureConfig) chart.Drawer {
	ch := chart.NewPieChart("Market Share", cfg)
	ch.AddSlice("alpha", 45, viz.Red)
	ch.AddSlice("beta", 30, viz.Green)
	ch.AddSlice("gamma", 15, viz.Blue)
	ch.AddSlice("other", 10, viz.Gray)
	return ch
}

func demoScatter(cfg viz.FigureConfig) chart.Drawer {
	g := chart.NewScatterGraph("Samples", "x", "y", cfg)

	d := chart.NewScatterDataset("cluster", viz.Red)
	d.Marker = viz.Cross(5)
	seed := 99991.0
	for i := 0; i < 60; i++ {
		seed = math.Mod(seed*16807, 2147483647)
		x := seed / 2147483647 * 10
		seed = math.Mod(seed*16807, 2147483647)
		y := seed / 2147483647 * 10
		d.AddPoint(x, y)
	}
	g.AddDataset(d)
	return g
}
