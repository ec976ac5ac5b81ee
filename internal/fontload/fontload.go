package fontload

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	// a missing name record is not fatal
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// Face creates a face of f for the given size in pixels.
// Faces are not safe for concurrent use; callers have to close them.
func (f *ScalableFont) Face(sizePx int) (font.Face, error) {
	if f == nil || f.SFNT == nil {
		return nil, fmt.Errorf("no font to create a face from")
	}
	return opentype.NewFace(f.SFNT, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72, // 1 point == 1 pixel
		Hinting: font.HintingNone,
	})
}

var (
	embeddedOnce sync.Once
	regular      *ScalableFont
	bold         *ScalableFont
	embeddedErr  error
)

func parseEmbedded() {
	if regular, embeddedErr = ParseOpenTypeFont(goregular.TTF); embeddedErr != nil {
		return
	}
	bold, embeddedErr = ParseOpenTypeFont(gobold.TTF)
}

// Regular returns the embedded Go Regular font. It is parsed once and shared.
func Regular() (*ScalableFont, error) {
	embeddedOnce.Do(parseEmbedded)
	return regular, embeddedErr
}

// Bold returns the embedded Go Bold font. It is parsed once and shared.
func Bold() (*ScalableFont, error) {
	embeddedOnce.Do(parseEmbedded)
	return bold, embeddedErr
}
