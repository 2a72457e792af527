// Package match binds labels to table columns.
//
// Binding is always exact: FindColumn compares trimmed, case-folded names and
// the first equal column wins. Nothing is ever bound by similarity.
//
// Similarity is only used to explain a miss. Suggest ranks columns by
// normalized Levenshtein distance so diagnostics can say which header the
// user probably meant.
//
// Key functions:
//   - FindColumn: exact case-insensitive header lookup
//   - NormalizeIdent: folds identifiers for similarity scoring
//   - Levenshtein: rune-wise edit distance
//   - Suggest: ranks near-miss columns for a label
package match
