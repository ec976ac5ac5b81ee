package chart

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sizechart/style"
	"github.com/stretchr/testify/suite"
)

type RenderTestEnviron struct {
	suite.Suite
	teardown func()
}

// listen for 'go test' command --> run test methods
func TestRenderFunctions(t *testing.T) {
	suite.Run(t, new(RenderTestEnviron))
}

// run once, before test suite methods
func (env *RenderTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.teardown = gotestingadapter.QuickConfig(env.T(), "sizechart.chart")
}

// run once, after test suite methods
func (env *RenderTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
	env.teardown()
}

func (env *RenderTestEnviron) renderer(opts Options) *Renderer {
	r, err := New(opts)
	env.Require().NoError(err)
	return r
}

func (env *RenderTestEnviron) decode(b []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(b))
	env.Require().NoError(err)
	return img
}

var sampleInput = Input{
	Headers: []string{"Size", "Bust", "Waist"},
	Rows: [][]string{
		{"S", "34 in", "28 in"},
		{"M", "36 in", "30 in"},
	},
	Product: Product{
		Title:           "Ribbed Tank",
		DescriptionHTML: "<p>Material: 100% cotton</p><p>Care: machine wash cold</p>",
	},
	ChartType: "Text-Based Measurements",
}

// ---------------------------------------------------------------------------

func (env *RenderTestEnviron) TestMinimalTable() {
	r := env.renderer(Options{})
	b, err := r.RenderChart(Input{Headers: []string{"Size"}})
	env.Require().NoError(err)
	env.NotNil(b)
	img := env.decode(b)
	env.Equal(image.Rect(0, 0, 1800, 140+120+180+520), img.Bounds())
}

func (env *RenderTestEnviron) TestNoHeaders() {
	r := env.renderer(Options{})
	b, err := r.RenderChart(Input{})
	env.Nil(b)
	env.ErrorIs(err, ErrNoHeaders)
}

func (env *RenderTestEnviron) TestDeterministic() {
	r := env.renderer(Options{})
	b1, err := r.RenderChart(sampleInput)
	env.Require().NoError(err)
	b2, err := r.RenderChart(sampleInput)
	env.Require().NoError(err)
	env.Equal(sha256.Sum256(b1), sha256.Sum256(b2))
	r2 := env.renderer(Options{Style: style.Default()})
	b3, err := r2.RenderChart(sampleInput)
	env.Require().NoError(err)
	env.Equal(sha256.Sum256(b1), sha256.Sum256(b3), "zero style is default style")
}

func (env *RenderTestEnviron) TestHeightFollowsDescriptionLength() {
	r := env.renderer(Options{})
	height := func(n int) int {
		in := sampleInput
		in.Product.DescriptionHTML = strings.Repeat("x", n)
		b, err := r.RenderChart(in)
		env.Require().NoError(err)
		return env.decode(b).Bounds().Dy()
	}
	h1, h2, h3 := height(1500), height(2500), height(6000)
	env.Less(h1, h2)
	env.Less(h2, h3)
}

func (env *RenderTestEnviron) TestCellBackgrounds() {
	r := env.renderer(Options{})
	b, err := r.RenderChart(sampleInput)
	env.Require().NoError(err)
	img := env.decode(b)
	l := ComputeLayout(sampleInput.Headers, 2, len(sampleInput.Product.DescriptionHTML))
	// probe near the lower left corner of a cell, clear of text and borders
	probe := func(row, col int) color.Color {
		x := int(l.TableX) + col*l.CellWidth + 20
		y := int(l.TableY) + HeaderHeight + row*CellHeight + CellHeight - 12
		return color.RGBAModel.Convert(img.At(x, y))
	}
	env.Equal(color.RGBA{0xd1, 0xb3, 0xe0, 0xff}, probe(0, 0))
	env.Equal(color.RGBA{0xd1, 0xb3, 0xe0, 0xff}, probe(1, 0))
	env.Equal(color.RGBA{0xff, 0xff, 0xff, 0xff}, probe(0, 1))
	env.Equal(color.RGBA{0xf8, 0xf8, 0xf8, 0xff}, probe(1, 1))
	// outer border
	env.Equal(color.RGBA{0x8b, 0x4a, 0x9c, 0xff}, color.RGBAModel.Convert(img.At(5, 5)))
}

func (env *RenderTestEnviron) TestExtraCellsIgnored() {
	r := env.renderer(Options{})
	in := sampleInput
	in.Rows = [][]string{{"S", "34 in", "28 in", "overflow", "more"}}
	b, err := r.RenderChart(in)
	env.Require().NoError(err)
	env.Equal(1800, env.decode(b).Bounds().Dx())
}

// hasTextLogo looks for the main color in the band of the text logo.
func hasTextLogo(img image.Image) bool {
	main := color.RGBA{0x8b, 0x4a, 0x9c, 0xff}
	band := image.Rect(500, 30, 1300, 80)
	for y := band.Min.Y; y < band.Max.Y; y++ {
		for x := band.Min.X; x < band.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == main {
				return true
			}
		}
	}
	return false
}

func (env *RenderTestEnviron) TestTextLogo() {
	st := style.Default()
	st.BrandName = "acme"
	b, err := env.renderer(Options{Style: st}).RenderChart(sampleInput)
	env.Require().NoError(err)
	env.True(hasTextLogo(env.decode(b)), "brand name should be drawn")
	st.BrandName = "   "
	b, err = env.renderer(Options{Style: st}).RenderChart(sampleInput)
	env.Require().NoError(err)
	env.False(hasTextLogo(env.decode(b)), "blank brand name draws nothing")
}

func (env *RenderTestEnviron) TestImageLogo() {
	red := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			red.Set(x, y, color.RGBA{0xff, 0, 0, 0xff})
		}
	}
	var loaded string
	r := env.renderer(Options{
		Logo: "logo.png",
		LogoLoader: func(location string) (image.Image, error) {
			loaded = location
			return red, nil
		},
	})
	b, err := r.RenderChart(sampleInput)
	env.Require().NoError(err)
	env.Equal("logo.png", loaded)
	// scaled to 542×271 and centered
	c := color.RGBAModel.Convert(env.decode(b).At(900, 165)).(color.RGBA)
	env.Greater(c.R, uint8(200))
	env.Less(c.G, uint8(50))
}

func (env *RenderTestEnviron) TestLogoFailureFallsBack() {
	st := style.Default()
	st.BrandName = "acme"
	r := env.renderer(Options{
		Style: st,
		Logo:  filepath.Join(env.T().TempDir(), "missing.png"),
	})
	b, err := r.RenderChart(sampleInput)
	env.NoError(err)
	env.NotNil(b)
	_, err = LoadLogo(filepath.Join(env.T().TempDir(), "missing.png"))
	env.ErrorIs(err, ErrLogo)
}

func (env *RenderTestEnviron) TestEmptyLogoFallsBack() {
	for _, logo := range []image.Image{image.NewRGBA(image.Rect(0, 0, 0, 0)), nil} {
		r := env.renderer(Options{
			Overrides: style.Overrides{BrandName: style.Some("acme")},
			Logo:      "empty.png",
			LogoLoader: func(string) (image.Image, error) {
				return logo, nil
			},
		})
		b, err := r.RenderChart(sampleInput)
		env.Require().NoError(err)
		env.True(hasTextLogo(env.decode(b)), "empty logo should fall back to the brand name")
	}
}

func (env *RenderTestEnviron) TestPanicIsRecovered() {
	r := env.renderer(Options{
		Logo: "boom",
		LogoLoader: func(string) (image.Image, error) {
			panic("decoder exploded")
		},
	})
	b, err := r.RenderChart(sampleInput)
	env.Nil(b)
	env.ErrorIs(err, ErrRender)
	env.Contains(err.Error(), "decoder exploded")
}

func (env *RenderTestEnviron) TestRenderFromHTMLTable() {
	r := env.renderer(Options{})
	b, err := r.RenderFromHTMLTable(
		"<tr><th>Size</th><th>Bust</th></tr><tr><td>S</td><td>34in</td></tr>",
		Product{Title: "Tee"})
	env.Require().NoError(err)
	env.Equal(140+120+120+180+520, env.decode(b).Bounds().Dy())
	b, err = r.RenderFromHTMLTable("<p>no table</p>", Product{Title: "Tee"})
	env.Nil(b)
	env.True(errors.Is(err, ErrMalformedTable))
}

func (env *RenderTestEnviron) TestInvalidStyle() {
	st := style.Default()
	st.BulletColor = "purple-ish"
	_, err := New(Options{Style: st})
	env.Error(err)
	st = style.Default()
	st.CellFontSize = 0
	_, err = New(Options{Style: st})
	env.Error(err)
}

func (env *RenderTestEnviron) TestStyleOverrides() {
	r := env.renderer(Options{Overrides: style.Overrides{
		BrandName:    style.Some("Acme"),
		CellFontSize: style.Some(30),
	}})
	env.Equal("Acme", r.Style().BrandName)
	env.Equal(30, r.Style().CellFontSize)
	env.Equal(style.Default().MainColor, r.Style().MainColor)
	// a partial Style is not completed from the defaults
	_, err := New(Options{Style: style.Config{BrandName: "Acme"}})
	env.ErrorIs(err, style.ErrInvalidStyle)
}

func (env *RenderTestEnviron) TestFitHeader() {
	r := env.renderer(Options{})
	faces := newFaceCache(r.regular, r.bold)
	defer faces.close()
	env.Equal(32, r.fitHeader("Size", 320, faces))
	long := r.fitHeader("Extraordinarily Long Measurement", 320, faces)
	env.Less(long, 32)
	env.GreaterOrEqual(long, headerFontFloor)
	env.Equal(headerFontFloor, r.fitHeader(strings.Repeat("W", 80), 320, faces))
}

func (env *RenderTestEnviron) TestCenterClamped() {
	env.Equal(40.0, centerClamped(0, 100, 20, 10))
	env.Equal(10.0, centerClamped(0, 100, 200, 10), "wide text starts at the margin")
	env.Equal(110.0, centerClamped(100, 100, 80, 10))
}
