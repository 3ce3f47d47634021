package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file. One FontSource can create
// multiple Face instances at different sizes; faces are cached per
// size. FontSource is heavyweight and should be shared across the
// application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string

	mu    sync.Mutex
	faces map[float64]*Face
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this
// call. Malformed data is a configuration error: nothing can be drawn
// with the source, so the error should be treated as fatal.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:  dataCopy,
		font:  f,
		faces: make(map[float64]*Face),
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font does not
// declare one.
func (s *FontSource) Name() string { return s.name }

// Face returns a face for this source at the given pixel size,
// creating it on first use.
func (s *FontSource) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f, nil
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	f := &Face{face: face, size: size}
	s.faces[size] = f
	return f, nil
}

// Face is a FontSource sized for rendering. Obtain one from
// FontSource.Face. A Face is not safe for concurrent use.
type Face struct {
	face font.Face
	size float64
}

// Size returns the pixel size the face was created at.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() font.Metrics {
	return f.face.Metrics()
}
