package table

import (
	"fmt"
	"strings"
)

// Table is parsed tabular input.
type Table struct {
	// Columns are the header names, unique by convention only.
	Columns []string
	// Rows hold one cell per column.
	Rows [][]string
}

// Empty returns a table with no columns and no rows.
func Empty() *Table {
	return &Table{Columns: []string{}, Rows: [][]string{}}
}

// FromRecords builds a table from raw records, the first being the header.
// Every later record is one row.
func FromRecords(records [][]string) *Table {
	t := Empty()
	if len(records) == 0 {
		return t
	}

	t.Columns = make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}

		t.Columns[i] = h
	}

	for _, rec := range records[1:] {
		row := make([]string, max(len(rec), len(t.Columns)))
		for i, c := range rec {
			row[i] = strings.TrimSpace(c)
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

// Row returns row i, or nil when i is out of range.
func (t *Table) Row(i int) []string {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}

	return t.Rows[i]
}

// Header returns the column names; a nil table has none.
func (t *Table) Header() []string {
	if t == nil {
		return nil
	}

	return t.Columns
}
