package chart

import (
	"regexp"
	"strings"
)

var (
	rowRx  = regexp.MustCompile(`(?is)<tr[^>]*>.*?</tr>`)
	cellRx = regexp.MustCompile(`(?is)<t[hd][^>]*>.*?</t[hd]>`)
)

// ParseHTMLTable reads the rows of an HTML table. Every <tr> with at least
// one <th> or <td> cell becomes a row of cell texts, with tags removed and
// whitespace collapsed. The result is nil if there are no such rows.
// The first row is usually the header row.
func ParseHTMLTable(tableHTML string) [][]string {
	var rows [][]string
	for _, tr := range rowRx.FindAllString(tableHTML, -1) {
		var cells []string
		for _, td := range cellRx.FindAllString(tr, -1) {
			cells = append(cells, strings.Join(strings.Fields(stripHTML(td)), " "))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}
