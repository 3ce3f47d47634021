package viz

import "errors"

// Sentinel errors for the viz package.
var (
	// ErrFontNotSet is returned by FigureConfig.Validate when either the
	// label or title font path is missing.
	ErrFontNotSet = errors.New("viz: label and title font paths must both be set")

	// ErrBufferSize is returned by PixelCanvas.Save when the buffer length
	// does not equal width*height*3.
	ErrBufferSize = errors.New("viz: buffer length does not match canvas dimensions")

	// ErrUnknownFormat is returned by PixelCanvas.Save for file extensions
	// with no registered encoder.
	ErrUnknownFormat = errors.New("viz: unsupported image format")
)
