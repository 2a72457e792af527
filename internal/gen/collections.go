package gen

import (
	"strings"

	"ugc-mapper/internal/table"
	"ugc-mapper/internal/ugc"
)

// SplitList splits one cell on "," or "|", trims every token and drops
// the empty ones.
func SplitList(cell string) []string {
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == '|'
	})

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// collectList flattens column col of every row into one list coerced to
// elem, keeping row order and in-cell order.
func collectList(tbl *table.Table, col int, elem ugc.ParamType) []any {
	out := make([]any, 0, tbl.Len())

	for i := range tbl.Len() {
		row := tbl.Row(i)
		if col < 0 || col >= len(row) {
			continue
		}

		for _, tok := range SplitList(row[col]) {
			out = append(out, Coerce(tok, elem))
		}
	}

	return out
}
