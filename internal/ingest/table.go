package ingest

import (
	"strconv"
	"strings"

	"github.com/CircuitStats/CS-Backend/internal/extract"
)

// Column names every normalized table carries, regardless of what the
// sheet's merged headers said.
const (
	ColGroup    = "Group"
	ColHomeCity = "HomeCity"
)

// DataTable is a rectangular table with uniquely named columns, produced
// from a raw grid whose first two rows were a split header.
type DataTable struct {
	Columns []string
	Rows    [][]string

	colIndex map[string]int
}

// HasColumn reports whether the table carries the named column.
func (t *DataTable) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Cell returns the named column's value in the given row. Missing columns
// and out-of-range rows return "".
func (t *DataTable) Cell(row int, col string) string {
	i, ok := t.colIndex[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][i]
}

// Float parses the named cell as a float. ok is false for missing columns
// and unparseable values.
func (t *DataTable) Float(row int, col string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(t.Cell(row, col)), 64)
	return v, err == nil
}

// Int parses the named cell as an integer.
func (t *DataTable) Int(row int, col string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(t.Cell(row, col)))
	return v, err == nil
}

func (t *DataTable) reindex() {
	t.colIndex = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		// First occurrence wins, so the positional Group/HomeCity names
		// cannot be shadowed by a later merged header with the same text.
		if _, ok := t.colIndex[c]; !ok {
			t.colIndex[c] = i
		}
	}
}

// NormalizeTable turns a raw grid into a DataTable:
//
//   - rows 0 and 1 are merged per column into flat names (trimmed,
//     space-joined); an empty merge becomes "BLANK"
//   - duplicate merged names get _1, _2, ... suffixes in first-seen order
//   - the header rows are dropped and the rest become data
//   - columns 0 and 1 are renamed Group and HomeCity by position,
//     whatever their merged text was
//
// Ragged header rows are a StructureError.
func NormalizeTable(raw extract.Table) (*DataTable, error) {
	if len(raw) < 2 {
		return nil, &StructureError{Reason: "table has no two-row header"}
	}
	if len(raw[0]) != len(raw[1]) {
		return nil, &StructureError{Reason: "header rows have differing column counts"}
	}
	width := len(raw[0])
	if width < 2 {
		return nil, &StructureError{Reason: "table narrower than two columns"}
	}

	counts := map[string]int{}
	columns := make([]string, 0, width)
	for i := 0; i < width; i++ {
		name := strings.TrimSpace(strings.TrimSpace(raw[0][i]) + " " + strings.TrimSpace(raw[1][i]))
		if name == "" {
			name = "BLANK"
		}
		if n, seen := counts[name]; seen {
			counts[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		} else {
			counts[name] = 0
		}
		columns = append(columns, name)
	}

	columns[0] = ColGroup
	columns[1] = ColHomeCity

	rows := make([][]string, 0, len(raw)-2)
	for _, r := range raw[2:] {
		row := make([]string, width)
		copy(row, r) // short raw rows pad with ""
		rows = append(rows, row)
	}

	t := &DataTable{Columns: columns, Rows: rows}
	t.reindex()
	return t, nil
}
