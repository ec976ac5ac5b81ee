package chart

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF logos
	_ "image/jpeg" // register JPEG logos
	_ "image/png"  // register PNG logos
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP logos
	_ "golang.org/x/image/webp" // register WebP logos
)

// LogoLoader loads a logo image from a location.
type LogoLoader func(location string) (image.Image, error)

// LogoTimeout limits fetching a logo over HTTP.
var LogoTimeout = 10 * time.Second

// LoadLogo is the default LogoLoader. It reads files, or fetches locations
// starting with "http://" or "https://".
func LoadLogo(location string) (image.Image, error) {
	var rc io.ReadCloser
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		client := http.Client{Timeout: LogoTimeout}
		resp, err := client.Get(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLogo, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s: HTTP status %d", ErrLogo, location, resp.StatusCode)
		}
		rc = resp.Body
	} else {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLogo, err)
		}
		rc = f
	}
	defer rc.Close()
	img, format, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogo, location, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrLogo, location)
	}
	tracer().Debugf("loaded %s logo %s, %v", format, location, img.Bounds().Size())
	return img, nil
}

// fitLogo scales a w×h logo to fit into the logo box, keeping its aspect ratio.
func fitLogo(w, h int) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	ratio := min(float64(maxLogoWidth)/float64(w), float64(maxLogoHeight)/float64(h))
	return float64(w) * ratio, float64(h) * ratio
}
