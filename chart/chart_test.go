package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vizgo/viz"
)

// testConfig returns a default configuration whose font paths point at
// real font files written under the test's temp directory.
func testConfig(t *testing.T) viz.FigureConfig {
	t.Helper()

	dir := t.TempDir()
	labelPath := filepath.Join(dir, "label.ttf")
	titlePath := filepath.Join(dir, "title.ttf")
	require.NoError(t, os.WriteFile(labelPath, goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(titlePath, gobold.TTF, 0o644))

	cfg := viz.DefaultConfig()
	cfg.SetFontPaths(labelPath, titlePath)
	return cfg
}

// countNonBackground returns how many pixels differ from the
// background.
func countNonBackground(c *viz.PixelCanvas) int {
	n := 0
	bg := c.Background()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.GetPixel(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func testCartesian(cfg viz.FigureConfig) *CartesianGraph {
	g := NewCartesianGraph("Title", "x", "y", cfg)
	d := NewCartesianDataset("series", viz.Red)
	d.AddPoint(-2, -1)
	d.AddPoint(0, 1)
	d.AddPoint(2, 2)
	g.AddDataset(d)
	return g
}

// TestDraw_FontNotSet verifies a chart with missing fonts fails before
// touching any pixel.
func TestDraw_FontNotSet(t *testing.T) {
	cfg := viz.DefaultConfig() // no fonts
	g := testCartesian(cfg)

	c := viz.NewPixelCanvas(200, 200, viz.White, 20)
	c.Clear()

	err := g.Draw(c)
	require.ErrorIs(t, err, viz.ErrFontNotSet)

	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			require.Equal(t, viz.White, c.GetPixel(x, y),
				"pixel (%d,%d) modified by failed draw", x, y)
		}
	}
}

// TestDraw_MissingFontFile verifies a dangling font path fails the same
// way.
func TestDraw_MissingFontFile(t *testing.T) {
	cfg := viz.DefaultConfig()
	cfg.SetFontPaths("/nonexistent/label.ttf", "/nonexistent/title.ttf")
	g := testCartesian(cfg)

	c := viz.NewPixelCanvas(200, 200, viz.White, 20)
	c.Clear()

	err := g.Draw(c)
	require.Error(t, err)
	assert.Zero(t, countNonBackground(c))
}

// TestDraw_AllChartTypes verifies every chart type renders a full frame
// with content.
func TestDraw_AllChartTypes(t *testing.T) {
	cfg := testConfig(t)

	area := NewAreaChart("Area", "x", "y", cfg)
	ad := NewAreaDataset("a", viz.Cyan, 0.5)
	ad.AddPoint(0, 1)
	ad.AddPoint(5, 4)
	ad.AddPoint(10, 2)
	area.AddDataset(ad)

	quad := NewQuadrant1Graph("Quadrant", "x", "y", cfg)
	qd := NewCartesianDataset("q", viz.Green)
	qd.AddPoint(1, 1)
	qd.AddPoint(4, 8)
	quad.AddDataset(qd)

	line := NewLineGraph("Line", "x", "y", cfg)
	ld := NewLineDataset("l", viz.Magenta)
	ld.Style = viz.Dashed(3)
	ld.AddPoint(-3, -2)
	ld.AddPoint(3, 2)
	line.AddDataset(ld)

	bars := NewGroupBarChart("Bars", "q", "v", Vertical, cfg)
	bd := NewBarDataset("b", viz.Blue)
	bd.AddData("Q1", 10)
	bd.AddData("Q2", 20)
	bars.AddDataset(bd)

	hbars := NewGroupBarChart("HBars", "v", "q", Horizontal, cfg)
	hd := NewBarDataset("h", viz.Yellow)
	hd.AddData("A", 5)
	hd.AddData("B", 9)
	hbars.AddDataset(hd)

	hist := NewHistogram("Hist", "v", "n", 5, viz.Gray, cfg)
	hist.AddDataSlice([]float64{1, 2, 2, 3, 3, 3, 4, 9})

	pie := NewPieChart("Pie", cfg)
	pie.AddSlice("a", 60, viz.Red)
	pie.AddSlice("b", 40, viz.Blue)

	scatter := NewScatterGraph("Scatter", "x", "y", cfg)
	sd := NewScatterDataset("s", viz.Red)
	sd.AddPoint(1, 1)
	sd.AddPoint(8, 6)
	scatter.AddDataset(sd)

	charts := map[string]Drawer{
		"cartesian": testCartesian(cfg),
		"line":      line,
		"quadrant":  quad,
		"area":      area,
		"bars":      bars,
		"hbars":     hbars,
		"histogram": hist,
		"pie":       pie,
		"scatter":   scatter,
	}

	for name, d := range charts {
		t.Run(name, func(t *testing.T) {
			c := viz.NewPixelCanvas(400, 300, viz.White, 50)
			require.NoError(t, d.Draw(c))
			assert.Positive(t, countNonBackground(c), "draw produced no content")
		})
	}
}

// TestDrawSVG_AllChartTypes verifies every chart type emits a document
// with content beyond the frame.
func TestDrawSVG_AllChartTypes(t *testing.T) {
	cfg := testConfig(t)

	pie := NewPieChart("Pie", cfg)
	pie.AddSlice("a", 60, viz.Red)
	pie.AddSlice("b", 40, viz.Blue)

	scatter := NewScatterGraph("Scatter", "x", "y", cfg)
	sd := NewScatterDataset("s", viz.Red)
	sd.AddPoint(1, 1)
	scatter.AddDataset(sd)

	area := NewAreaChart("Area", "x", "y", cfg)
	ad := NewAreaDataset("a", viz.Cyan, 0.5)
	ad.AddPoint(0, 1)
	ad.AddPoint(10, 2)
	area.AddDataset(ad)

	charts := map[string]Drawer{
		"cartesian": testCartesian(cfg),
		"pie":       pie,
		"scatter":   scatter,
		"area":      area,
	}

	for name, d := range charts {
		t.Run(name, func(t *testing.T) {
			svg := viz.NewSVGCanvas(400, 300, "white", 50)
			require.NoError(t, d.DrawSVG(svg))

			s := svg.String()
			assert.Contains(t, s, "viewBox")
			assert.Contains(t, s, "</svg>")
			// More than just the header and background rect.
			assert.Greater(t, strings.Count(s, "<"), 4)
		})
	}
}

// TestDraw_StyledPolylines verifies the dataset style reaches the SVG
// stroke.
func TestDraw_StyledPolylines(t *testing.T) {
	cfg := testConfig(t)
	g := NewLineGraph("Styles", "x", "y", cfg)

	d := NewLineDataset("dashed", viz.Red)
	d.Style = viz.Dashed(4)
	d.AddPoint(-1, -1)
	d.AddPoint(1, 1)
	g.AddDataset(d)

	svg := viz.NewSVGCanvas(400, 300, "white", 50)
	require.NoError(t, g.DrawSVG(svg))
	assert.Contains(t, svg.String(), `stroke-dasharray="4,4"`)
}

// TestDraw_SaveRoundTrip verifies a rendered frame survives a PNG
// encode/decode cycle.
func TestDraw_SaveRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	g := testCartesian(cfg)

	c := viz.NewPixelCanvas(300, 200, viz.White, 40)
	require.NoError(t, g.Draw(c))

	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, c.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	require.Equal(t, 300, bounds.Dx())
	require.Equal(t, 200, bounds.Dy())

	mismatches := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 300; x++ {
			want := c.GetPixel(x, y)
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if uint8(pr>>8) != want[0] || uint8(pg>>8) != want[1] || uint8(pb>>8) != want[2] {
				mismatches++
			}
		}
	}
	assert.Zero(t, mismatches, "decoded PNG differs from canvas")
}

// TestDrawLegend verifies legend squares land in the bottom margin.
func TestDrawLegend(t *testing.T) {
	cfg := testConfig(t)
	g := testCartesian(cfg)

	c := viz.NewPixelCanvas(300, 200, viz.White, 40)
	c.Clear()
	require.NoError(t, g.DrawLegend(c))

	found := false
	for y := 160; y < 200 && !found; y++ {
		for x := 0; x < 300; x++ {
			if c.GetPixel(x, y) == viz.Red {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no legend square in the bottom margin")
}

// TestConfigAccessor verifies Config returns the live configuration.
func TestConfigAccessor(t *testing.T) {
	cfg := testConfig(t)
	g := testCartesian(cfg)

	g.Config().NumAxisTicks = 4
	assert.Equal(t, 4, g.Config().NumAxisTicks)
}
