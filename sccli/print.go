package main

import (
	"fmt"

	"github.com/npillmayer/sizechart/chart"
	"github.com/npillmayer/sizechart/measure"
	"github.com/pterm/pterm"
)

func printTable(tbl *measure.Table) {
	if tbl.IsEmpty() {
		pterm.Info.Println("no measurements found")
		return
	}
	headers, rows := tbl.Grid()
	data := append([][]string{headers}, rows...)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d measurements for %d sizes\n", tbl.Count(), tbl.Len())
}

func printFacts(details []chart.Detail) {
	if len(details) == 0 {
		pterm.Info.Println("no product facts found")
		return
	}
	for _, d := range details {
		pterm.Printf("  • %s %s\n", d.Label, d.Content)
	}
}

func styleOp(intp *Intp, op *Op) (error, bool) {
	st, err := intp.styleConfig()
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Parameter", "Value"},
		{"mainColor", st.MainColor},
		{"headerBg", st.HeaderBg},
		{"textColor", st.TextColor},
		{"borderColor", st.BorderColor},
		{"bulletColor", st.BulletColor},
		{"alternateRowColor", st.AlternateRowColor},
		{"tableBorderWidth", fmt.Sprint(st.TableBorderWidth)},
		{"headerBorderWidth", fmt.Sprint(st.HeaderBorderWidth)},
		{"outerBorderWidth", fmt.Sprint(st.OuterBorderWidth)},
		{"titleUnderlineHeight", fmt.Sprint(st.TitleUnderlineHeight)},
		{"titleFontSize", fmt.Sprint(st.TitleFontSize)},
		{"headerFontSize", fmt.Sprint(st.HeaderFontSize)},
		{"cellFontSize", fmt.Sprint(st.CellFontSize)},
		{"detailFontSize", fmt.Sprint(st.DetailFontSize)},
		{"bulletFontSize", fmt.Sprint(st.BulletFontSize)},
		{"brandName", st.BrandName},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
