package viz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the standard appearance values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumAxisTicks != 10 {
		t.Errorf("NumAxisTicks: got %d, want 10", cfg.NumAxisTicks)
	}
	if cfg.NumGridHorizontal != 10 || cfg.NumGridVertical != 10 {
		t.Errorf("grid spacing: got (%d, %d), want (10, 10)",
			cfg.NumGridHorizontal, cfg.NumGridVertical)
	}
	if cfg.ColorGrid != LightGray {
		t.Errorf("ColorGrid: got %v, want LightGray", cfg.ColorGrid)
	}
	if cfg.ColorBackground != White {
		t.Errorf("ColorBackground: got %v, want White", cfg.ColorBackground)
	}
	if cfg.ColorAxis != Black || cfg.ColorTitle != Black {
		t.Errorf("axis/title color: got %v, %v, want Black", cfg.ColorAxis, cfg.ColorTitle)
	}
	if cfg.FontSizeLabel != 12 || cfg.FontSizeTitle != 24 ||
		cfg.FontSizeLegend != 10 || cfg.FontSizeAxis != 10 {
		t.Errorf("font sizes: got (%v, %v, %v, %v)",
			cfg.FontSizeLabel, cfg.FontSizeTitle, cfg.FontSizeLegend, cfg.FontSizeAxis)
	}
}

// TestValidate verifies missing font paths are a configuration error.
func TestValidate(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); !errors.Is(err, ErrFontNotSet) {
		t.Errorf("no fonts: got %v, want ErrFontNotSet", err)
	}

	cfg.FontLabel = "label.ttf"
	if err := cfg.Validate(); !errors.Is(err, ErrFontNotSet) {
		t.Errorf("title font missing: got %v, want ErrFontNotSet", err)
	}

	cfg.SetFontPaths("label.ttf", "title.ttf")
	if err := cfg.Validate(); err != nil {
		t.Errorf("both fonts set: got %v, want nil", err)
	}
}

// TestLoadConfig verifies TOML keys override defaults and absent keys
// keep them.
func TestLoadConfig(t *testing.T) {
	content := `
num_axis_ticks = 5
color_background = [30, 30, 30]
font_label = "fonts/label.ttf"
font_title = "fonts/title.ttf"
font_size_title = 32.0
`
	path := filepath.Join(t.TempDir(), "figure.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.NumAxisTicks != 5 {
		t.Errorf("NumAxisTicks: got %d, want 5", cfg.NumAxisTicks)
	}
	if cfg.ColorBackground != (RGB{30, 30, 30}) {
		t.Errorf("ColorBackground: got %v, want {30 30 30}", cfg.ColorBackground)
	}
	if cfg.FontLabel != "fonts/label.ttf" || cfg.FontTitle != "fonts/title.ttf" {
		t.Errorf("fonts: got %q, %q", cfg.FontLabel, cfg.FontTitle)
	}
	if cfg.FontSizeTitle != 32 {
		t.Errorf("FontSizeTitle: got %v, want 32", cfg.FontSizeTitle)
	}
	// Keys absent from the file keep their defaults.
	if cfg.NumGridHorizontal != 10 {
		t.Errorf("NumGridHorizontal: got %d, want default 10", cfg.NumGridHorizontal)
	}
	if cfg.FontSizeLabel != 12 {
		t.Errorf("FontSizeLabel: got %v, want default 12", cfg.FontSizeLabel)
	}
}

// TestLoadConfig_MissingFile verifies the error path returns the
// defaults alongside the error.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg.NumAxisTicks != 10 {
		t.Errorf("defaults not returned on error: %+v", cfg)
	}
}

// TestLoadConfig_Malformed verifies parse errors are reported.
func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("num_axis_ticks = [not valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
