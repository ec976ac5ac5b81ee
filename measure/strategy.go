package measure

import (
	"strings"
)

// Strategy is one way of recognizing measurements in a normalized text.
// Strategies add to a table; a later strategy may overwrite cells found by an
// earlier one.
type Strategy struct {
	Name  string
	apply func(*Text, *Table)
}

// Apply runs the strategy on t, merging its findings into tbl.
func (s Strategy) Apply(t *Text, tbl *Table) {
	if s.apply == nil || t == nil || tbl == nil {
		return
	}
	s.apply(t, tbl)
}

// The strategies of this package. DefaultStrategies runs them all, in the
// order listed here.
var (
	// LinePass reads lines starting with a size, e.g. "M: bust 36in, waist 30in".
	LinePass = Strategy{Name: "line", apply: linePass}
	// BlockPass finds sizes followed by measures anywhere in the text, or in
	// the text following one of BlockKeywords.
	BlockPass = Strategy{Name: "block", apply: blockPass}
	// ColumnTablePass reads column-aligned text tables with a header line.
	ColumnTablePass = Strategy{Name: "column-table", apply: columnTablePass}
	// TransposedPass reads tables with sizes as columns and measurements as rows.
	TransposedPass = Strategy{Name: "transposed", apply: transposedPass}
)

// DefaultStrategies is the strategy list used by Extract.
var DefaultStrategies = []Strategy{LinePass, BlockPass, ColumnTablePass, TransposedPass}

// --- Line and block passes -------------------------------------------------

func linePass(t *Text, tbl *Table) {
	for _, line := range t.Lines {
		m := lineRx.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		size := strings.ToUpper(strings.TrimSpace(m[1]))
		collectMeasures(size, m[2], tbl)
	}
}

func blockPass(t *Text, tbl *Table) {
	text := t.Flat()
	for _, kw := range BlockKeywords {
		if i := strings.Index(text, kw); i >= 0 {
			text = text[i+len(kw):]
			tracer().Debugf("block pass starts after %q", kw)
			break
		}
	}
	// every size token starts a segment reaching up to the next one
	var marks [][]int
	for _, loc := range sizeRx.FindAllStringIndex(text, -1) {
		if leadingUnitRx.MatchString(text[loc[1]:]) { // a value like "34 in"
			continue
		}
		if inNumber(text, loc) { // "34" or "5" of "34.5"
			continue
		}
		marks = append(marks, loc)
	}
	for i, loc := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		segment := text[loc[1]:end]
		if !blockHeadRx.MatchString(segment) {
			continue
		}
		collectMeasures(strings.ToUpper(text[loc[0]:loc[1]]), segment, tbl)
	}
}

// inNumber reports whether the match at loc is a digit group of a decimal
// or fractional number.
func inNumber(text string, loc []int) bool {
	if numberTailRx.MatchString(text[loc[1]:]) {
		return true
	}
	i := loc[0]
	return i >= 2 && (text[i-1] == '.' || text[i-1] == '/') && isDigit(text[i-2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// collectMeasures scans s for "name number unit" fragments and stores the
// whitelisted ones for size.
func collectMeasures(size, s string, tbl *Table) {
	for _, m := range measureRx.FindAllStringSubmatch(s, -1) {
		name := cleanName(m[1])
		if name == "" || !isMeasurementName(name) {
			continue
		}
		tbl.Set(size, titleCase(name), formatValue(m[2], unitOf(m[3], m[4])))
	}
}

// --- Table passes ----------------------------------------------------------

func columnTablePass(t *Text, tbl *Table) {
	for i, line := range t.Raw {
		if countKeywords(line, TableHeaderKeywords) < 2 {
			continue
		}
		headers := splitColumns(line)
		if len(headers) < 2 {
			continue
		}
		end := min(i+10, len(t.Raw))
		for _, dataLine := range t.Raw[i+1 : end] {
			if strings.TrimSpace(dataLine) == "" || strings.Contains(dataLine, ":") {
				break
			}
			values := splitColumns(dataLine)
			if len(values) != len(headers) || !sizeOnlyRx.MatchString(values[0]) {
				continue
			}
			size := strings.ToUpper(values[0])
			for j, header := range headers[1:] {
				name, headerUnit := splitHeader(header)
				if name == "" || !isMeasurementName(name) {
					continue
				}
				m := cellValueRx.FindStringSubmatch(values[j+1])
				if m == nil {
					continue
				}
				unit := unitOf(m[2], m[3])
				if unit == "" {
					unit = headerUnit
				}
				tbl.Set(size, titleCase(name), formatValue(m[1], unit))
			}
		}
	}
}

func transposedPass(t *Text, tbl *Table) {
	for i, line := range t.Lines {
		sizes := sizeHeader(line)
		if len(sizes) < 2 {
			continue
		}
		end := min(i+15, len(t.Lines))
		for _, dataLine := range t.Lines[i+1 : end] {
			if dataLine == "" {
				continue
			}
			if len(sizeHeader(dataLine)) >= 2 { // next table
				break
			}
			term := longestTerm(dataLine)
			if term == "" {
				continue
			}
			values := valueRx.FindAllStringSubmatch(dataLine, -1)
			if len(values) < len(sizes) {
				continue
			}
			name := titleCase(term)
			for j, size := range sizes {
				v := values[j]
				tbl.Set(size, name, formatValue(v[1], unitOf(v[2], v[3])))
			}
		}
	}
}

// sizeHeader returns the sizes of a line which consists of size tokens only,
// optionally introduced by "size:" or "sizes".
func sizeHeader(line string) []string {
	line = sizeLeadRx.ReplaceAllString(strings.TrimSpace(line), "")
	if line == "" {
		return nil
	}
	line = strings.ReplaceAll(line, "one size", "one_size")
	var sizes []string
	for _, tok := range sizeSepRx.Split(line, -1) {
		if tok == "" {
			continue
		}
		tok = strings.ReplaceAll(tok, "_", " ")
		if !sizeOnlyRx.MatchString(tok) {
			return nil
		}
		sizes = append(sizes, strings.ToUpper(tok))
	}
	return sizes
}

// splitColumns splits a table line at tabs, pipes and runs of two or more
// spaces.
func splitColumns(line string) []string {
	var cols []string
	for _, c := range columnSepRx.Split(strings.TrimSpace(line), -1) {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// splitHeader separates a unit annotation like "(cm)" from a header.
func splitHeader(header string) (name, unit string) {
	if m := headerUnitRx.FindStringSubmatch(header); m != nil {
		unit = m[1]
		header = strings.Replace(header, m[0], " ", 1)
	}
	return cleanName(header), unit
}

func countKeywords(line string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			n++
		}
	}
	return n
}
