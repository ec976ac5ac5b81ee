package main

import (
	"strings"

	"github.com/npillmayer/sizechart/measure"
	"github.com/npillmayer/sizechart/style"
	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "style", "set":
		pterm.Info.Println("Style parameters")
		pterm.Println(`
	Set a parameter with 'set:<name>:<value>', reset it with 'set:<name>'.
	Colors are hex strings (#rgb or #rrggbb), sizes are pixels.
	Use '_' for blanks in values, e.g. 'set:brandName:Acme_Shop'.
	`)
		pterm.Println(strings.Join(style.Keys(), ", "))
	case "extract", "keywords":
		pterm.Info.Println("Extraction")
		pterm.Println(`
	A description is searched for measurements only if it contains
	one of these keywords:`)
		pterm.Println(strings.Join(measure.GateKeywords, ", "))
		pterm.Println(`
	Measurements are accepted for these names:`)
		pterm.Println(strings.Join(measure.MeasurementTerms, ", "))
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	desc                 enter a description, end with a single '.'
	load:<file>          read a description from a file
	title:<title>        set the product title ('_' for blanks)
	extract              show the measurement table
	facts                show the product facts
	set:<name>:<value>   set a style parameter (see 'help:style')
	style                show the current style
	render:<file>        render a chart to a PNG file
	quit                 leave

	Steps may be combined on a line, e.g. 'load:tee.txt extract render:tee.png'.
	`)
	}
}
