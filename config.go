package viz

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FigureConfig holds the appearance settings shared by every chart
// type: tick and grid counts, colors, font sizes and font paths.
// The zero value is not useful; start from DefaultConfig.
type FigureConfig struct {
	// NumAxisTicks is the number of tick labels along each axis.
	NumAxisTicks int `toml:"num_axis_ticks"`
	// NumGridHorizontal is the pixel spacing of vertical grid lines.
	NumGridHorizontal int `toml:"num_grid_horizontal"`
	// NumGridVertical is the pixel spacing of horizontal grid lines.
	NumGridVertical int `toml:"num_grid_vertical"`

	ColorGrid       RGB `toml:"color_grid"`
	ColorAxis       RGB `toml:"color_axis"`
	ColorBackground RGB `toml:"color_background"`
	ColorTitle      RGB `toml:"color_title"`

	FontSizeLabel  float64 `toml:"font_size_label"`
	FontSizeTitle  float64 `toml:"font_size_title"`
	FontSizeLegend float64 `toml:"font_size_legend"`
	FontSizeAxis   float64 `toml:"font_size_axis"`

	// FontLabel and FontTitle are file paths to TTF/OTF fonts. Both must
	// be set before a chart that renders text can draw; Validate
	// enforces this.
	FontLabel string `toml:"font_label"`
	FontTitle string `toml:"font_title"`
}

// DefaultConfig returns the standard configuration: 10 ticks, 10-pixel
// grid spacing, light gray grid, black axes and title on a white
// background, and no fonts set.
func DefaultConfig() FigureConfig {
	return FigureConfig{
		NumAxisTicks:      10,
		NumGridHorizontal: 10,
		NumGridVertical:   10,
		ColorGrid:         LightGray,
		ColorAxis:         Black,
		ColorBackground:   White,
		ColorTitle:        Black,
		FontSizeLabel:     12,
		FontSizeTitle:     24,
		FontSizeLegend:    10,
		FontSizeAxis:      10,
	}
}

// SetFontPaths sets both font paths at once.
func (c *FigureConfig) SetFontPaths(labelPath, titlePath string) {
	c.FontLabel = labelPath
	c.FontTitle = titlePath
}

// Validate checks that the configuration can support text rendering.
// Charts call this before touching any pixel, so a misconfigured figure
// never produces a partial frame.
func (c *FigureConfig) Validate() error {
	if c.FontLabel == "" || c.FontTitle == "" {
		return ErrFontNotSet
	}
	return nil
}

// LoadConfig reads a FigureConfig from a TOML file. Keys absent from
// the file keep their DefaultConfig values.
//
// Example file:
//
//	num_axis_ticks = 5
//	color_background = [30, 30, 30]
//	font_label = "fonts/Go-Regular.ttf"
//	font_title = "fonts/Go-Bold.ttf"
func LoadConfig(path string) (FigureConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("viz: reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("viz: parsing config %s: %w", path, err)
	}
	return cfg, nil
}
