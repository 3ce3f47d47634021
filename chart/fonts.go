package chart

import (
	"sync"

	"github.com/vizgo/viz/text"
)

// fontCache shares FontSources across draw calls so tick labels do not
// reparse the font file once per label. Keyed by file path.
var (
	fontMu    sync.Mutex
	fontCache = map[string]*text.FontSource{}
)

func fontSource(path string) (*text.FontSource, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if s, ok := fontCache[path]; ok {
		return s, nil
	}
	s, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	fontCache[path] = s
	return s, nil
}

func fontFace(path string, size float64) (*text.Face, error) {
	s, err := fontSource(path)
	if err != nil {
		return nil, err
	}
	return s.Face(size)
}
