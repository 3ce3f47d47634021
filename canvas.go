package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// PixelCanvas is a rectangular RGB pixel buffer, 3 bytes per pixel in
// row-major order, with an advisory margin reserved on all four sides
// for axes and labels. The margin bounds the iteration of the fill
// helpers (FillHorizontal, FillVertical, FillGrid); raw pixel writes are
// not clipped by it.
//
// PixelCanvas implements image.Image and draw.Image so that standard
// library encoders and font drawers can target it directly.
type PixelCanvas struct {
	width      int
	height     int
	margin     int
	background RGB
	buf        []uint8 // RGB format, 3 bytes per pixel
}

// NewPixelCanvas creates a canvas with the given dimensions, background
// color and margin. The buffer starts zero-filled (black) regardless of
// the requested background; the background is applied by Clear.
func NewPixelCanvas(width, height int, background RGB, margin int) *PixelCanvas {
	return &PixelCanvas{
		width:      width,
		height:     height,
		margin:     margin,
		background: background,
		buf:        make([]uint8, width*height*3),
	}
}

// Width returns the width of the canvas in pixels.
func (c *PixelCanvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *PixelCanvas) Height() int { return c.height }

// Margin returns the pixel inset reserved for axis and label furniture.
func (c *PixelCanvas) Margin() int { return c.margin }

// Background returns the configured background color.
func (c *PixelCanvas) Background() RGB { return c.background }

// Data returns the raw pixel data (RGB format, 3 bytes per pixel).
func (c *PixelCanvas) Data() []uint8 { return c.buf }

// Clear fills the entire canvas with the background color.
func (c *PixelCanvas) Clear() {
	for i := 0; i < len(c.buf); i += 3 {
		c.buf[i+0] = c.background[0]
		c.buf[i+1] = c.background[1]
		c.buf[i+2] = c.background[2]
	}
}

// ClearLegacy fills every byte of the buffer with the first background
// channel only, reproducing the historical single-byte fill. Only useful
// when byte-for-byte compatibility with images produced by that behavior
// matters; otherwise use Clear.
func (c *PixelCanvas) ClearLegacy() {
	for i := range c.buf {
		c.buf[i] = c.background[0]
	}
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are silently dropped.
func (c *PixelCanvas) SetPixel(x, y int, col RGB) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 3
	c.buf[i+0] = col[0]
	c.buf[i+1] = col[1]
	c.buf[i+2] = col[2]
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates return the zero color.
func (c *PixelCanvas) GetPixel(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{c.buf[i+0], c.buf[i+1], c.buf[i+2]}
}

// BlendPixel blends a color into a pixel with the given alpha in [0, 1]:
// alpha*col + (1-alpha)*existing per channel, truncated to integer.
// Alpha is not clamped; callers pass values outside [0, 1] at their own
// risk. Out-of-bounds coordinates are silently dropped.
func (c *PixelCanvas) BlendPixel(x, y int, col RGB, alpha float64) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 3
	for ch := 0; ch < 3; ch++ {
		c.buf[i+ch] = uint8(float64(col[ch])*alpha + float64(c.buf[i+ch])*(1.0-alpha))
	}
}

// FillHorizontal draws a horizontal line at y spanning the drawable
// width (margin to width-margin). A margin wider than half the canvas
// leaves nothing drawable; the call is then a no-op.
func (c *PixelCanvas) FillHorizontal(y int, col RGB) {
	if 2*c.margin > c.width {
		Logger().Warn("viz: margin exceeds canvas width, nothing to fill",
			"margin", c.margin, "width", c.width)
		return
	}
	for x := c.margin; x < c.width-c.margin; x++ {
		c.SetPixel(x, y, col)
	}
}

// FillVertical draws a vertical line at x spanning the drawable height
// (margin to height-margin). A no-op when the margin exceeds half the
// canvas height.
func (c *PixelCanvas) FillVertical(x int, col RGB) {
	if 2*c.margin > c.height {
		Logger().Warn("viz: margin exceeds canvas height, nothing to fill",
			"margin", c.margin, "height", c.height)
		return
	}
	for y := c.margin; y < c.height-c.margin; y++ {
		c.SetPixel(x, y, col)
	}
}

// FillGrid draws grid lines across the drawable area: vertical lines
// every xStep pixels and horizontal lines every yStep pixels, both
// ranges inclusive of the far margin. Non-positive steps are ignored.
func (c *PixelCanvas) FillGrid(xStep, yStep int, col RGB) {
	if xStep > 0 {
		for x := c.margin; x <= c.width-c.margin; x += xStep {
			c.FillVertical(x, col)
		}
	}
	if yStep > 0 {
		for y := c.margin; y <= c.height-c.margin; y += yStep {
			c.FillHorizontal(y, col)
		}
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *PixelCanvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			si := (y*c.width + x) * 3
			di := img.PixOffset(x, y)
			img.Pix[di+0] = c.buf[si+0]
			img.Pix[di+1] = c.buf[si+1]
			img.Pix[di+2] = c.buf[si+2]
			img.Pix[di+3] = 0xff
		}
	}
	return img
}

// ARGB returns the buffer expanded to one 0xAARRGGBB word per pixel,
// the layout expected by most windowing hosts presenting raw frames.
func (c *PixelCanvas) ARGB() []uint32 {
	out := make([]uint32, c.width*c.height)
	for p := range out {
		i := p * 3
		out[p] = 0xff000000 |
			uint32(c.buf[i+0])<<16 |
			uint32(c.buf[i+1])<<8 |
			uint32(c.buf[i+2])
	}
	return out
}

// Save encodes the canvas to an image file. The format is chosen by the
// file extension: .png, .jpg/.jpeg, .bmp or .tiff. Returns
// ErrUnknownFormat for anything else and ErrBufferSize if the buffer no
// longer matches the canvas dimensions.
func (c *PixelCanvas) Save(path string) error {
	if len(c.buf) != c.width*c.height*3 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(c.buf), c.width, c.height)
	}

	var encode func(f *os.File, img image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File, img image.Image) error { return jpeg.Encode(f, img, nil) }
	case ".bmp":
		encode = func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }
	case ".tiff", ".tif":
		encode = func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, c.ToImage())
}

// At implements the image.Image interface.
func (c *PixelCanvas) At(x, y int) color.Color {
	px := c.GetPixel(x, y)
	return color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xff}
}

// Set implements the draw.Image interface. The alpha channel of the
// incoming color is discarded; compositing against the existing pixel is
// the caller's job (draw.DrawMask and font drawers do this themselves).
func (c *PixelCanvas) Set(x, y int, col color.Color) {
	r, g, b, _ := col.RGBA()
	c.SetPixel(x, y, RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
}

// Bounds implements the image.Image interface.
func (c *PixelCanvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *PixelCanvas) ColorModel() color.Model {
	return color.RGBAModel
}
