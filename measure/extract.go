package measure

// MinCells is the minimum number of measurement cells of a non-empty
// extraction result. Callers may apply a stricter threshold before rendering.
const MinCells = 1

// Extract parses a product description into a measurement table, using
// DefaultStrategies. Descriptions without any of GateKeywords, or without
// recognizable measurements, yield an empty table.
func Extract(description string) *Table {
	return ExtractWith(description, DefaultStrategies...)
}

// ExtractWith is Extract with an explicit list of strategies, applied in
// order.
func ExtractWith(description string, strategies ...Strategy) *Table {
	text := Normalize(description)
	if !text.HasGateKeyword() {
		tracer().Debugf("no size keyword in description")
		return NewTable()
	}
	tbl := NewTable()
	for _, s := range strategies {
		before := tbl.Count()
		s.Apply(text, tbl)
		tracer().Debugf("%s pass: %d cells, %d new", s.Name, tbl.Count(), tbl.Count()-before)
	}
	if tbl.Count() < MinCells {
		return NewTable()
	}
	tracer().Infof("extracted %d measurements for %d sizes", tbl.Count(), tbl.Len())
	return tbl
}
