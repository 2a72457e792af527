// Package gen folds a table into a copy of a template instance.
//
// Generation never fails. Malformed cell text degrades to the target
// type's default (see Coerce), out-of-range columns read as empty cells,
// and configurations pointing past the template's slots are skipped.
// Slots without a configuration, or configured to be ignored, are copied
// from the template byte for byte.
//
// Per strategy:
//   - Scalar: the static value coerced to the declared type
//   - ScalarList: every row's cell split on "," or "|", coerced to the base type
//   - Struct: one nested structure from the first row (row index 0)
//   - StructList: one nested structure per row, in row order
//   - Dict: one key/value entry per row, in row order
package gen
