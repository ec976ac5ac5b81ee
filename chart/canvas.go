package chart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

// canvas is a white RGBA image with a few drawing primitives. Coordinates
// are float pixels; shapes are snapped to the pixel grid by rounding.
type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return &canvas{img: img}
}

func snap(v float64) int {
	return int(math.Round(v))
}

// fillRect fills the rectangle at (x,y) with size w×h. Parts outside the
// canvas are clipped.
func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(snap(x), snap(y), snap(x+w), snap(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// strokeRect draws the outline of a rectangle with a line of width lw,
// centered on the rectangle's edges.
func (c *canvas) strokeRect(x, y, w, h, lw float64, col color.Color) {
	if lw <= 0 {
		return
	}
	half := lw / 2
	c.fillRect(x-half, y-half, w+lw, lw, col)   // top
	c.fillRect(x-half, y+h-half, w+lw, lw, col) // bottom
	c.fillRect(x-half, y+half, lw, h-lw, col)   // left
	c.fillRect(x+w-half, y+half, lw, h-lw, col) // right
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// fillCircle draws a filled, anti-aliased circle.
func (c *canvas) fillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	bbox := image.Rect(int(math.Floor(cx-r)), int(math.Floor(cy-r)), int(math.Ceil(cx+r)), int(math.Ceil(cy+r)))
	if bbox.Intersect(c.img.Bounds()).Empty() {
		return
	}
	z := vector.NewRasterizer(bbox.Dx(), bbox.Dy())
	ox, oy := float32(cx-float64(bbox.Min.X)), float32(cy-float64(bbox.Min.Y))
	rr, k := float32(r), float32(kappa*r)
	z.MoveTo(ox+rr, oy)
	z.CubeTo(ox+rr, oy+k, ox+k, oy+rr, ox, oy+rr)
	z.CubeTo(ox-k, oy+rr, ox-rr, oy+k, ox-rr, oy)
	z.CubeTo(ox-rr, oy-k, ox-k, oy-rr, ox, oy-rr)
	z.CubeTo(ox+k, oy-rr, ox+rr, oy-k, ox+rr, oy)
	z.ClosePath()
	// rasterize into a mask first; the rasterizer does not clip
	mask := image.NewAlpha(image.Rect(0, 0, bbox.Dx(), bbox.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, bbox, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

// drawImage draws src scaled into the rectangle at (x,y) with size w×h.
func (c *canvas) drawImage(src image.Image, x, y, w, h float64) {
	dr := image.Rect(snap(x), snap(y), snap(x+w), snap(y+h))
	if dr.Empty() {
		return
	}
	draw.CatmullRom.Scale(c.img, dr, src, src.Bounds(), draw.Over, nil)
}

// fillText draws s with its baseline starting at (x,y).
func (c *canvas) fillText(face font.Face, s string, x, y float64, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

// measureText returns the advance width of s.
func measureText(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func (c *canvas) encodePNG() ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
