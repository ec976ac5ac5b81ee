/*
Package sizechart synthesizes size chart images from product descriptions.

Many shops describe the measurements of a garment only in the free text of
its product description, e.g.

	S: bust 34in, waist 28in
	M: bust 36in, waist 30in

A Synthesizer turns such descriptions into a PNG chart ready for upload as
a product image. It first looks for an HTML <table> with size information in
the description and renders it as is. Otherwise it extracts measurements
from the text (see package measure) and renders them as a table (see package
chart), together with a list of product facts like material and care.

Processing whole catalogs, with duplicate detection, uploads and pacing, is
done by package batch.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sizechart

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sizechart/chart"
	"github.com/npillmayer/sizechart/measure"
)

// tracer traces with key 'sizechart'
func tracer() tracing.Trace {
	return tracing.Select("sizechart")
}

// MinRenderCells is the minimum number of extracted measurements for a
// chart to be worth rendering.
const MinRenderCells = 2

// Chart types, telling where the data of a chart came from.
const (
	FromHTMLTable = "HTML Table"
	FromText      = "Text-Based Measurements"
)

// TableKeywords qualify an HTML table in a description as a size table.
var TableKeywords = []string{"size", "measurement", "chart", "bust", "waist",
	"length", "small", "medium", "large"}

// Options configure a Synthesizer.
type Options struct {
	Chart      chart.Options      // renderer configuration
	Strategies []measure.Strategy // nil means measure.DefaultStrategies
	NoTables   bool               // ignore HTML tables in descriptions
}

// Synthesizer creates size charts for products. It holds no per-product
// state and may be used concurrently.
type Synthesizer struct {
	renderer   *chart.Renderer
	strategies []measure.Strategy
	noTables   bool
}

// New creates a Synthesizer.
func New(opts Options) (*Synthesizer, error) {
	r, err := chart.New(opts.Chart)
	if err != nil {
		return nil, err
	}
	s := &Synthesizer{
		renderer:   r,
		strategies: opts.Strategies,
		noTables:   opts.NoTables,
	}
	if s.strategies == nil {
		s.strategies = measure.DefaultStrategies
	}
	return s, nil
}

// Renderer returns the chart renderer of s.
func (s *Synthesizer) Renderer() *chart.Renderer {
	return s.renderer
}

// Chart is a synthesized size chart.
type Chart struct {
	PNG    []byte
	Type   string         // FromHTMLTable or FromText
	Table  *measure.Table // extracted measurements, nil for HTML tables
	Source string         // the HTML table a chart was rendered from
}

// Extract extracts the measurement table of a product.
func (s *Synthesizer) Extract(p Product) *measure.Table {
	return measure.ExtractWith(p.DescriptionHTML, s.strategies...)
}

// Synthesize creates a size chart for a product. Products without size
// information yield ErrNoSizeChartData, products with fewer than
// MinRenderCells measurements yield ErrInsufficientMeasurements. Rendering
// errors are passed through from package chart.
func (s *Synthesizer) Synthesize(p Product) (*Chart, error) {
	if !s.noTables {
		if c := s.fromTables(p); c != nil {
			return c, nil
		}
	}
	tbl := s.Extract(p)
	if tbl.IsEmpty() {
		tracer().Infof("%v: %v", p, ErrNoSizeChartData)
		return nil, ErrNoSizeChartData
	}
	if n := tbl.Count(); n < MinRenderCells {
		err := fmt.Errorf("%w: found %d, need at least %d", ErrInsufficientMeasurements, n, MinRenderCells)
		tracer().Infof("%v: %v", p, err)
		return nil, err
	}
	headers, rows := tbl.Grid()
	png, err := s.renderer.RenderChart(chart.Input{
		Headers:   headers,
		Rows:      rows,
		Product:   p.ChartProduct(),
		ChartType: FromText,
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("%v: chart from %d measurements", p, tbl.Count())
	return &Chart{PNG: png, Type: FromText, Table: tbl}, nil
}

var (
	tableRx  = regexp.MustCompile(`(?is)<table\b[^>]*>.*?</table>`)
	anyTagRx = regexp.MustCompile(`<[^>]*>`)
)

// SizeTables returns the HTML tables of a description which mention one of
// TableKeywords.
func SizeTables(descriptionHTML string) []string {
	var tables []string
	for _, t := range tableRx.FindAllString(descriptionHTML, -1) {
		text := strings.ToLower(anyTagRx.ReplaceAllString(t, " "))
		for _, k := range TableKeywords {
			if strings.Contains(text, k) {
				tables = append(tables, t)
				break
			}
		}
	}
	return tables
}

// fromTables renders the first size table of a description which has at
// least one body row.
func (s *Synthesizer) fromTables(p Product) *Chart {
	for _, t := range SizeTables(p.DescriptionHTML) {
		if len(chart.ParseHTMLTable(t)) < 2 {
			tracer().Debugf("%v: skipping table without body rows", p)
			continue
		}
		png, err := s.renderer.RenderFromHTMLTable(t, p.ChartProduct())
		if err != nil {
			tracer().Errorf("%v: %v", p, err)
			continue
		}
		tracer().Infof("%v: chart from HTML table", p)
		return &Chart{PNG: png, Type: FromHTMLTable, Source: t}
	}
	return nil
}
