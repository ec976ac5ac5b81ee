package measure

import (
	"sort"
	"strings"
)

// Table maps size labels to measurement names to values.
// Sizes are kept in the order they were first seen. Every size in a table
// has at least one measurement.
//
// The zero value is not usable, use NewTable. A nil *Table behaves like an
// empty table for all read operations.
type Table struct {
	sizes []string
	cells map[string]map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{cells: make(map[string]map[string]string)}
}

// Set stores value for a size and measurement name, replacing a previous
// value. Empty arguments are ignored.
func (t *Table) Set(size, name, value string) {
	size = strings.ToUpper(strings.TrimSpace(size))
	if size == "" || name == "" || value == "" {
		return
	}
	row, ok := t.cells[size]
	if !ok {
		row = make(map[string]string)
		t.cells[size] = row
		t.sizes = append(t.sizes, size)
	}
	row[name] = value
}

// Get returns the value for a size and measurement name.
func (t *Table) Get(size, name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.cells[size][name]
	return v, ok
}

// Sizes returns the size labels in first-seen order.
func (t *Table) Sizes() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.sizes...)
}

// Names returns all measurement names of the table, sorted.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, row := range t.cells {
		for name := range row {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of sizes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.sizes)
}

// Count returns the total number of measurement cells.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, row := range t.cells {
		n += len(row)
	}
	return n
}

// IsEmpty is true for a table without measurements.
func (t *Table) IsEmpty() bool {
	return t.Count() == 0
}

// AsMap returns a copy of the table as nested maps.
func (t *Table) AsMap() map[string]map[string]string {
	m := make(map[string]map[string]string)
	if t == nil {
		return m
	}
	for size, row := range t.cells {
		r := make(map[string]string, len(row))
		for name, v := range row {
			r[name] = v
		}
		m[size] = r
	}
	return m
}

// Grid lays the table out for rendering. The first column is "Size", the
// other columns are the sorted measurement names. Rows follow the size order,
// missing cells are "-".
func (t *Table) Grid() (headers []string, rows [][]string) {
	names := t.Names()
	headers = append([]string{"Size"}, names...)
	for _, size := range t.Sizes() {
		row := make([]string, 0, len(headers))
		row = append(row, size)
		for _, name := range names {
			if v, ok := t.cells[size][name]; ok {
				row = append(row, v)
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func (t *Table) String() string {
	if t.IsEmpty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, size := range t.sizes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(size)
		b.WriteString(": {")
		row := t.cells[size]
		names := make([]string, 0, len(row))
		for name := range row {
			names = append(names, name)
		}
		sort.Strings(names)
		for j, name := range names {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name + "=" + row[name])
		}
		b.WriteString("}")
	}
	b.WriteString("}")
	return b.String()
}
