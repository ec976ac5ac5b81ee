/*
Package chart renders size charts to PNG.

A chart consists of a logo band (an image logo or the brand name as text), the
title "SIZE CHART", the size table and a list of product facts taken from the
product description. The canvas grows with the number of table columns and
rows, and with the length of the product description:

	┌───────────────────────────────────────┐
	│               LOGO / BRAND            │
	│  SIZE CHART                           │
	│  ‾‾‾‾‾‾‾‾‾‾                           │
	│     ┌──────┬──────┬──────┐            │
	│     │ Size │ Bust │ Waist│            │
	│     ├──────┼──────┼──────┤            │
	│     │  S   │ 34 in│ 28 in│            │
	│     └──────┴──────┴──────┘            │
	│  ● Material: 100% Cotton              │
	│  ● Care: Machine wash cold            │
	└───────────────────────────────────────┘

Rendering is pure raster work on an image.RGBA, with text set from OpenType
faces (the Go fonts by default). For fixed input the output is byte-for-byte
reproducible.

A Renderer is configured once and may be used for any number of charts,
also concurrently. Every call allocates its own canvas and font faces.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package chart

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sizechart.chart'
func tracer() tracing.Trace {
	return tracing.Select("sizechart.chart")
}

var (
	// ErrNoHeaders is returned for a chart without columns.
	ErrNoHeaders = errors.New("chart: no table headers")
	// ErrMalformedTable is returned for HTML without table rows.
	ErrMalformedTable = errors.New("chart: HTML contains no table rows")
	// ErrRender wraps any failure while drawing or encoding a chart.
	ErrRender = errors.New("chart: rendering failed")
	// ErrLogo wraps failures to load a logo image.
	ErrLogo = errors.New("chart: cannot load logo")
)
