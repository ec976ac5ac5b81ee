package chart

import (
	"fmt"

	"github.com/npillmayer/sizechart/internal/fontload"
	"golang.org/x/image/font"
)

// faceCache creates font faces on demand during a single render call.
// Faces are not safe for concurrent use, so a cache must not outlive its call.
type faceCache struct {
	regular, bold *fontload.ScalableFont
	faces         map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size int
}

func newFaceCache(regular, bold *fontload.ScalableFont) *faceCache {
	return &faceCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}
}

func (fc *faceCache) face(bold bool, size int) (font.Face, error) {
	key := faceKey{bold: bold, size: size}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}
	sf := fc.regular
	if bold {
		sf = fc.bold
	}
	f, err := sf.Face(size)
	if err != nil {
		return nil, fmt.Errorf("cannot create %dpx face: %w", size, err)
	}
	fc.faces[key] = f
	return f, nil
}

// mustFace is face for use inside drawing code, which recovers from panics.
func (fc *faceCache) mustFace(bold bool, size int) font.Face {
	f, err := fc.face(bold, size)
	if err != nil {
		panic(err)
	}
	return f
}

func (fc *faceCache) close() {
	for key, f := range fc.faces {
		f.Close()
		delete(fc.faces, key)
	}
}

// loadFonts returns the fonts configured by file name, falling back to the
// embedded Go fonts for empty names.
func loadFonts(regularFile, boldFile string) (regular, bold *fontload.ScalableFont, err error) {
	load := func(file string, fallback func() (*fontload.ScalableFont, error)) (*fontload.ScalableFont, error) {
		if file == "" {
			return fallback()
		}
		f, err := fontload.LoadOpenTypeFont(file)
		if err != nil {
			return nil, fmt.Errorf("chart: cannot load font %s: %w", file, err)
		}
		tracer().Infof("loaded font %q from %s", f.Fontname, file)
		return f, nil
	}
	if regular, err = load(regularFile, fontload.Regular); err != nil {
		return nil, nil, err
	}
	if bold, err = load(boldFile, fontload.Bold); err != nil {
		return nil, nil, err
	}
	return regular, bold, nil
}
