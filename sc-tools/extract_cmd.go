package main

import (
	"fmt"

	"github.com/npillmayer/sizechart"
	"github.com/npillmayer/sizechart/chart"
	"github.com/npillmayer/sizechart/measure"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runExtractCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	desc := mustReadArg(args, "file")
	tbl := measure.Extract(desc)
	if tbl.IsEmpty() {
		fatalf("no measurements found")
	}
	headers, rows := tbl.Grid()
	data := append([][]string{headers}, rows...)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Printf("%d measurements for %d sizes\n", tbl.Count(), tbl.Len())
	if tbl.Count() < sizechart.MinRenderCells {
		fmt.Printf("too few measurements for a chart (need %d)\n", sizechart.MinRenderCells)
	}
}

func runFactsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	desc := mustReadArg(args, "file")
	details := chart.ProductDetails(desc)
	if len(details) == 0 {
		fatalf("no product facts found")
	}
	data := [][]string{{"Label", "Content"}}
	for _, d := range details {
		data = append(data, []string{d.Label, d.Content})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
