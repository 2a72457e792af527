package plan

import (
	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/match"
)

// Rematch rebinds existing configurations to the current columns. A
// ScalarList slot whose label names a column is bound to it; a struct
// field whose target key names a column is forced to that column. Scalar
// and Dict slots are left alone. The input is never modified; the bool
// reports whether anything changed.
func Rematch(configs []mapping.SlotConfig, columns []string) ([]mapping.SlotConfig, bool) {
	out := mapping.CloneAll(configs)
	if len(out) == 0 || len(columns) == 0 {
		return out, false
	}

	changed := false

	for i := range out {
		c := &out[i]

		switch m := c.Mapping.(type) {
		case mapping.ScalarListMapping:
			col := match.FindColumn(columns, c.Label)
			if col != match.NotFound && col != m.Column {
				c.Mapping = mapping.ScalarListMapping{Column: col}
				changed = true
			}

		case mapping.StructMapping, mapping.StructListMapping:
			_, fields, _ := mapping.StructFields(m)
			if rematchFields(fields, columns) {
				c.Mapping = mapping.WithStructFields(m, fields)
				changed = true
			}
		}
	}

	return out, changed
}

// rematchFields updates fields in place and reports whether any changed.
func rematchFields(fields []mapping.FieldMapping, columns []string) bool {
	changed := false

	for j := range fields {
		col := match.FindColumn(columns, fields[j].TargetKey)
		if col == match.NotFound {
			continue
		}

		want := mapping.ColumnSource(col)
		if fields[j].Source != want {
			fields[j].Source = want
			changed = true
		}
	}

	return changed
}
