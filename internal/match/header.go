package match

import "strings"

// NotFound is returned by FindColumn when no column matches.
const NotFound = -1

// NormalizeHeader folds a header or label for exact comparison.
func NormalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindColumn returns the index of the first column whose trimmed,
// case-folded name equals the trimmed, case-folded name, or NotFound.
// A blank name never matches.
func FindColumn(columns []string, name string) int {
	want := NormalizeHeader(name)
	if want == "" {
		return NotFound
	}

	for i, c := range columns {
		if NormalizeHeader(c) == want {
			return i
		}
	}

	return NotFound
}
