package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Delimiter returns the cell delimiter for a header line: tab if the line
// contains one, comma otherwise.
func Delimiter(header string) rune {
	if strings.ContainsRune(header, '\t') {
		return '\t'
	}

	return ','
}

// Parse splits pasted delimited text into a table. The first non-blank line
// is the header; every later non-blank line is one row, even when all of its
// cells are empty. Each line is tokenized on its own: quoted cells are
// honoured so a comma-delimited cell may itself hold a list ("a,b"), but a
// quote never spans lines.
func Parse(text string) (*Table, error) {
	var (
		records [][]string
		comma   rune
	)

	for n, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if records == nil {
			comma = Delimiter(line)
		}

		rec, err := splitLine(line, comma)
		if err != nil {
			return nil, fmt.Errorf("failed to parse table line %d: %w", n+1, err)
		}

		records = append(records, rec)
	}

	return FromRecords(records), nil
}

func splitLine(line string, comma rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	// An unterminated quote runs to the end of the line and reports io.EOF
	// along with the record.
	rec, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(rec) == 0 {
		return []string{""}, nil
	}

	return rec, nil
}

// ReadFile loads a table from disk. Workbooks (.xlsx, .xlsm) are read with
// ReadXLSX; anything else is treated as delimited text.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}

	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
