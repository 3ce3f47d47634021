// Package text loads fonts and stamps glyph runs onto raster surfaces.
//
// A FontSource parses a TTF or OTF font once; Face instances derive
// from it at specific pixel sizes and are cached per source. Drawing
// targets any draw.Image, which includes viz.PixelCanvas.
//
// The placement convention throughout is top-left: the (x, y) passed to
// Draw is the top-left corner of the text's bounding box. Callers that
// want centering subtract half the measured width and height
// themselves; every chart helper follows the same rule.
//
// Faces are not safe for concurrent use. Render passes are
// single-threaded, so this never matters in practice; create separate
// faces if you draw from multiple goroutines.
package text
