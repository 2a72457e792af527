// Package table holds the tabular input of the mapper: ordered column
// names plus ordered rows of string cells. Row order is significant; it
// decides the order of generated list, struct-list and dictionary entries.
//
// Tables come from pasted delimited text (Parse) or from the first sheet of
// an Excel workbook (ReadXLSX). Both paths apply the same normalization:
// cells are trimmed, blank header cells become "Column n", and short rows
// are padded with empty cells.
package table
