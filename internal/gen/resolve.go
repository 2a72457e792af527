package gen

import (
	"strconv"

	"ugc-mapper/internal/mapping"
)

// Resolve reads the raw value a field mapping selects from one row and
// coerces it to the mapping's target type. Columns outside the row read
// as "".
func Resolve(row []string, rowIndex int, fm mapping.FieldMapping) any {
	return Coerce(rawValue(row, rowIndex, fm.Source), fm.TargetType)
}

func rawValue(row []string, rowIndex int, src mapping.Source) string {
	switch src.Kind {
	case mapping.SourceRowIndex:
		return strconv.Itoa(rowIndex)
	case mapping.SourceStatic:
		return src.Value
	case mapping.SourceColumn:
		if src.Column < 0 || src.Column >= len(row) {
			return ""
		}

		return row[src.Column]
	default:
		return ""
	}
}
