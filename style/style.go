/*
Package style holds the visual configuration of a size chart: colors, border
widths and font sizes.

A Config is built once per renderer by merging Overrides onto Default() and
is treated as read-only afterwards. Overrides may come from code, from a YAML
document (LoadYAML) or from any schuko configuration (FromConfiguration).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'sizechart.style'
func tracer() tracing.Trace {
	return tracing.Select("sizechart.style")
}

// ErrInvalidStyle is returned for configurations which cannot be rendered.
var ErrInvalidStyle = errors.New("invalid chart style")

// Config is the complete set of visual parameters of a chart.
// Colors are HTML hex strings ("#8B4A9C"), sizes are pixels.
type Config struct {
	MainColor         string
	HeaderBg          string
	TextColor         string
	BorderColor       string
	BulletColor       string
	AlternateRowColor string

	TableBorderWidth     int
	HeaderBorderWidth    int
	OuterBorderWidth     int
	TitleUnderlineHeight int

	TitleFontSize  int
	HeaderFontSize int
	CellFontSize   int
	DetailFontSize int
	BulletFontSize int

	BrandName string // used for the text logo; empty means no text logo
}

// Default returns the default chart style.
func Default() Config {
	return Config{
		MainColor:            "#8B4A9C",
		HeaderBg:             "#D1B3E0",
		TextColor:            "#000000",
		BorderColor:          "#8B4A9C",
		BulletColor:          "#8B4A9C",
		AlternateRowColor:    "#F8F8F8",
		TableBorderWidth:     11,
		HeaderBorderWidth:    18,
		OuterBorderWidth:     22,
		TitleUnderlineHeight: 4,
		TitleFontSize:        48,
		HeaderFontSize:       32,
		CellFontSize:         38,
		DetailFontSize:       32,
		BulletFontSize:       36,
	}
}

// Overrides is a partial Config. Fields which are None keep the value of
// the Config they are merged onto.
type Overrides struct {
	MainColor         Option[string] `yaml:"mainColor"`
	HeaderBg          Option[string] `yaml:"headerBg"`
	TextColor         Option[string] `yaml:"textColor"`
	BorderColor       Option[string] `yaml:"borderColor"`
	BulletColor       Option[string] `yaml:"bulletColor"`
	AlternateRowColor Option[string] `yaml:"alternateRowColor"`

	TableBorderWidth     Option[int] `yaml:"tableBorderWidth"`
	HeaderBorderWidth    Option[int] `yaml:"headerBorderWidth"`
	OuterBorderWidth     Option[int] `yaml:"outerBorderWidth"`
	TitleUnderlineHeight Option[int] `yaml:"titleUnderlineHeight"`

	TitleFontSize  Option[int] `yaml:"titleFontSize"`
	HeaderFontSize Option[int] `yaml:"headerFontSize"`
	CellFontSize   Option[int] `yaml:"cellFontSize"`
	DetailFontSize Option[int] `yaml:"detailFontSize"`
	BulletFontSize Option[int] `yaml:"bulletFontSize"`

	BrandName Option[string] `yaml:"brandName"`
}

// Merge returns a copy of c with all values present in o applied.
func (c Config) Merge(o Overrides) Config {
	c.MainColor = o.MainColor.Or(c.MainColor)
	c.HeaderBg = o.HeaderBg.Or(c.HeaderBg)
	c.TextColor = o.TextColor.Or(c.TextColor)
	c.BorderColor = o.BorderColor.Or(c.BorderColor)
	c.BulletColor = o.BulletColor.Or(c.BulletColor)
	c.AlternateRowColor = o.AlternateRowColor.Or(c.AlternateRowColor)
	c.TableBorderWidth = o.TableBorderWidth.Or(c.TableBorderWidth)
	c.HeaderBorderWidth = o.HeaderBorderWidth.Or(c.HeaderBorderWidth)
	c.OuterBorderWidth = o.OuterBorderWidth.Or(c.OuterBorderWidth)
	c.TitleUnderlineHeight = o.TitleUnderlineHeight.Or(c.TitleUnderlineHeight)
	c.TitleFontSize = o.TitleFontSize.Or(c.TitleFontSize)
	c.HeaderFontSize = o.HeaderFontSize.Or(c.HeaderFontSize)
	c.CellFontSize = o.CellFontSize.Or(c.CellFontSize)
	c.DetailFontSize = o.DetailFontSize.Or(c.DetailFontSize)
	c.BulletFontSize = o.BulletFontSize.Or(c.BulletFontSize)
	c.BrandName = o.BrandName.Or(c.BrandName)
	return c
}

// LoadYAML reads style overrides from a YAML document. Keys use the
// camel-case names of the style parameters, e.g.
//
//	mainColor: "#224466"
//	cellFontSize: 34
//	brandName: Acme
func LoadYAML(r io.Reader) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) { // empty document
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	return o, nil
}

// Palette is the set of decoded colors of a Config.
type Palette struct {
	Main         color.RGBA
	HeaderBg     color.RGBA
	Text         color.RGBA
	Border       color.RGBA
	Bullet       color.RGBA
	AlternateRow color.RGBA
}

// Palette decodes the hex colors of c.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	decode := func(name, hex string, dst *color.RGBA) {
		if err != nil {
			return
		}
		*dst, err = parseHex(hex)
		if err != nil {
			err = fmt.Errorf("%w: color %s: %v", ErrInvalidStyle, name, err)
		}
	}
	decode("mainColor", c.MainColor, &p.Main)
	decode("headerBg", c.HeaderBg, &p.HeaderBg)
	decode("textColor", c.TextColor, &p.Text)
	decode("borderColor", c.BorderColor, &p.Border)
	decode("bulletColor", c.BulletColor, &p.Bullet)
	decode("alternateRowColor", c.AlternateRowColor, &p.AlternateRow)
	return p, err
}

// Validate checks that c can be rendered: colors must decode, widths must not
// be negative and font sizes must be positive.
func (c Config) Validate() error {
	if _, err := c.Palette(); err != nil {
		return err
	}
	for name, w := range map[string]int{
		"tableBorderWidth":     c.TableBorderWidth,
		"headerBorderWidth":    c.HeaderBorderWidth,
		"outerBorderWidth":     c.OuterBorderWidth,
		"titleUnderlineHeight": c.TitleUnderlineHeight,
	} {
		if w < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidStyle, name)
		}
	}
	for name, sz := range map[string]int{
		"titleFontSize":  c.TitleFontSize,
		"headerFontSize": c.HeaderFontSize,
		"cellFontSize":   c.CellFontSize,
		"detailFontSize": c.DetailFontSize,
		"bulletFontSize": c.BulletFontSize,
	} {
		if sz <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidStyle, name)
		}
	}
	return nil
}

func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
