package chart

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/sizechart/internal/fontload"
	"github.com/npillmayer/sizechart/style"
)

// Product is the part of a product record a chart shows.
type Product struct {
	Title           string
	DescriptionHTML string // source of the product facts
}

// Input is everything a single chart is drawn from.
type Input struct {
	Headers   []string   // column labels, "Size" first
	Rows      [][]string // body rows; cells beyond len(Headers) are ignored
	Product   Product
	ChartType string // informational, e.g. "HTML Table"
}

// Options configure a Renderer.
// Style has to be a complete configuration; partial settings belong into
// Overrides, which are merged onto Style (or onto style.Default() for a zero
// Style).
type Options struct {
	Style           style.Config // zero value means style.Default()
	Overrides       style.Overrides
	Logo            string     // file path or http(s) URL of a logo image
	LogoLoader      LogoLoader // nil means LoadLogo
	RegularFontFile string     // OpenType font for fact contents; empty for Go Regular
	BoldFontFile    string     // OpenType font for everything else; empty for Go Bold
}

// Renderer draws size charts with a fixed style.
type Renderer struct {
	style         style.Config
	palette       style.Palette
	logo          string
	loadLogo      LogoLoader
	regular, bold *fontload.ScalableFont
}

// New creates a Renderer. It fails for invalid styles and unreadable fonts.
func New(opts Options) (*Renderer, error) {
	st := opts.Style
	if st == (style.Config{}) {
		st = style.Default()
	}
	st = st.Merge(opts.Overrides)
	if err := st.Validate(); err != nil {
		return nil, err
	}
	pal, err := st.Palette()
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		style:    st,
		palette:  pal,
		logo:     opts.Logo,
		loadLogo: opts.LogoLoader,
	}
	if r.loadLogo == nil {
		r.loadLogo = LoadLogo
	}
	if r.regular, r.bold, err = loadFonts(opts.RegularFontFile, opts.BoldFontFile); err != nil {
		return nil, err
	}
	return r, nil
}

// Style returns the style the renderer draws with.
func (r *Renderer) Style() style.Config {
	return r.style
}

// RenderChart draws a chart and returns it PNG-encoded. On failure the error
// wraps ErrRender (or is ErrNoHeaders) and no bytes are returned.
func (r *Renderer) RenderChart(in Input) (png []byte, err error) {
	if len(in.Headers) == 0 {
		tracer().Errorf("cannot render chart for %q: %v", in.Product.Title, ErrNoHeaders)
		return nil, ErrNoHeaders
	}
	l := ComputeLayout(in.Headers, len(in.Rows), utf8.RuneCountInString(in.Product.DescriptionHTML))
	tracer().Debugf("rendering %s chart for %q: %d×%d table, %d×%d px",
		in.ChartType, in.Product.Title, l.Columns, l.Rows, l.Width, l.Height)
	faces := newFaceCache(r.regular, r.bold)
	defer faces.close()
	defer func() {
		if p := recover(); p != nil {
			png, err = nil, fmt.Errorf("%w: %v", ErrRender, p)
			tracer().Errorf("chart for %q: %v", in.Product.Title, err)
		}
	}()
	c := newCanvas(l.Width, l.Height)
	r.drawLogo(c, l, faces)
	r.drawTitle(c, faces)
	r.drawHeaders(c, l, in.Headers, faces)
	r.drawRows(c, l, in.Rows, faces)
	r.drawFacts(c, l, ProductDetails(in.Product.DescriptionHTML), faces)
	ow := float64(r.style.OuterBorderWidth)
	c.strokeRect(ow/2, ow/2, float64(l.Width)-ow, float64(l.Height)-ow, ow, r.palette.Border)
	if png, err = c.encodePNG(); err != nil {
		err = fmt.Errorf("%w: %v", ErrRender, err)
		tracer().Errorf("chart for %q: %v", in.Product.Title, err)
		return nil, err
	}
	tracer().Infof("rendered chart for %q, %d bytes", in.Product.Title, len(png))
	return png, nil
}

// RenderFromHTMLTable renders a chart from an HTML <table>. The first row
// holds the headers, all others are body rows.
func (r *Renderer) RenderFromHTMLTable(tableHTML string, p Product) ([]byte, error) {
	rows := ParseHTMLTable(tableHTML)
	if len(rows) == 0 {
		tracer().Errorf("cannot render table for %q: %v", p.Title, ErrMalformedTable)
		return nil, ErrMalformedTable
	}
	return r.RenderChart(Input{
		Headers:   rows[0],
		Rows:      rows[1:],
		Product:   p,
		ChartType: "HTML Table",
	})
}

// --- Drawing steps ---------------------------------------------------------

func (r *Renderer) drawLogo(c *canvas, l Layout, faces *faceCache) {
	if r.logo != "" {
		img, err := r.loadLogo(r.logo)
		if err == nil && (img == nil || img.Bounds().Empty()) {
			err = fmt.Errorf("%w: %s: empty image", ErrLogo, r.logo)
		}
		if err == nil {
			r.drawImageLogo(c, l, img)
			return
		}
		tracer().Errorf("using text logo: %v", err)
	}
	r.drawTextLogo(c, l, faces)
}

func (r *Renderer) drawImageLogo(c *canvas, l Layout, img image.Image) {
	w, h := fitLogo(img.Bounds().Dx(), img.Bounds().Dy())
	c.drawImage(img, (float64(l.Width)-w)/2, logoTop, w, h)
}

func (r *Renderer) drawTextLogo(c *canvas, l Layout, faces *faceCache) {
	brand := strings.TrimSpace(r.style.BrandName)
	if brand == "" {
		return
	}
	text := strings.ToUpper(brand)
	face := faces.mustFace(true, textLogoSize)
	x := (float64(l.Width) - measureText(face, text)) / 2
	c.fillText(face, text, x, logoTop+textLogoSize, r.palette.Main)
}

func (r *Renderer) drawTitle(c *canvas, faces *faceCache) {
	face := faces.mustFace(true, r.style.TitleFontSize)
	x := float64(Padding + titleGap)
	y := float64(logoAreaHeight + titleGap + r.style.TitleFontSize)
	c.fillText(face, titleText, x, y, r.palette.Main)
	w := measureText(face, titleText)
	c.fillRect(x, y+underlineGap, w, float64(r.style.TitleUnderlineHeight), r.palette.Main)
}

func (r *Renderer) drawHeaders(c *canvas, l Layout, headers []string, faces *faceCache) {
	cw := float64(l.CellWidth)
	for i, label := range headers {
		x := l.TableX + float64(i)*cw
		y := l.TableY
		c.fillRect(x, y, cw, HeaderHeight, r.palette.HeaderBg)
		c.strokeRect(x, y, cw, HeaderHeight, float64(r.style.HeaderBorderWidth), r.palette.Border)
		size := r.fitHeader(label, l.CellWidth, faces)
		face := faces.mustFace(true, size)
		tx := centerClamped(x, cw, measureText(face, label), headerMarginX)
		c.fillText(face, label, tx, y+float64(HeaderHeight+size)/2, r.palette.Text)
	}
}

// fitHeader finds the font size for a header label: starting from the
// configured header size it decreases in steps of 2 until the label fits
// into the cell (with margins) or the floor size is reached.
func (r *Renderer) fitHeader(label string, cellWidth int, faces *faceCache) int {
	size := r.style.HeaderFontSize
	maxW := float64(cellWidth - 2*headerMarginX)
	maxH := HeaderHeight - 20
	for i := 0; i < maxFitSteps && size > headerFontFloor; i++ {
		w := measureText(faces.mustFace(true, size), label)
		if w <= maxW && size <= maxH {
			return size
		}
		size -= headerFontStep
	}
	return max(size, headerFontFloor)
}

func (r *Renderer) drawRows(c *canvas, l Layout, rows [][]string, faces *faceCache) {
	cw := float64(l.CellWidth)
	face := faces.mustFace(true, r.style.CellFontSize)
	for ri, row := range rows {
		y := l.TableY + float64(HeaderHeight+ri*CellHeight)
		for ci, cell := range row {
			if ci >= l.Columns {
				break
			}
			x := l.TableX + float64(ci)*cw
			c.fillRect(x, y, cw, CellHeight, r.cellBackground(ri, ci))
			c.strokeRect(x, y, cw, CellHeight, float64(r.style.TableBorderWidth), r.palette.Border)
			tx := centerClamped(x, cw, measureText(face, cell), cellMarginX)
			c.fillText(face, cell, tx, y+float64(CellHeight+r.style.CellFontSize)/2, r.palette.Text)
		}
	}
}

// cellBackground repeats the header color in the size column and stripes
// the other columns.
func (r *Renderer) cellBackground(row, col int) color.Color {
	switch {
	case col == 0:
		return r.palette.HeaderBg
	case row%2 == 0:
		return white
	}
	return r.palette.AlternateRow
}

func (r *Renderer) drawFacts(c *canvas, l Layout, details []Detail, faces *faceCache) {
	if len(details) > l.MaxDetails {
		details = details[:l.MaxDetails]
	}
	labelFace := faces.mustFace(true, r.style.BulletFontSize)
	contentFace := faces.mustFace(false, r.style.DetailFontSize)
	bulletX := float64(Padding + bulletIndent)
	labelX := bulletX + labelIndent
	for i, d := range details {
		y := l.FactsY() + float64(i*factSpacing)
		c.fillCircle(bulletX+bulletRadius, y+bulletCenterDy, bulletRadius, r.palette.Bullet)
		c.fillText(labelFace, d.Label, labelX, y+factBaseline, r.palette.Text)
		contentX := labelX + measureText(labelFace, d.Label) + contentGap
		c.fillText(contentFace, truncate(d.Content, l.MaxContent), contentX, y+factBaseline, r.palette.Text)
	}
	tracer().Debugf("drew %d product facts", len(details))
}

// centerClamped centers a text of width w in a cell starting at x with
// width cw. The text never starts left of the margin and, where possible,
// does not run into the right margin.
func centerClamped(x, cw, w, margin float64) float64 {
	tx := x + (cw-w)/2
	tx = min(tx, x+cw-w-margin)
	return max(tx, x+margin)
}
