package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseTabDelimited(t *testing.T) {
	text := "Var1\tVar2\tName\n" +
		"A\tA1,A2\tItem A\n" +
		"\n" +
		"B\tB1|B2\tItem B\n"

	tbl, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Var1", "Var2", "Name"}, tbl.Columns)
	assert.Equal(t, [][]string{
		{"A", "A1,A2", "Item A"},
		{"B", "B1|B2", "Item B"},
	}, tbl.Rows)
}

func TestParseUnbalancedQuoteStaysOnItsLine(t *testing.T) {
	tbl, err := Parse("Name\tDesc\na\t\"quoted start\nb\tplain\nc\tx")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"a", "quoted start"},
		{"b", "plain"},
		{"c", "x"},
	}, tbl.Rows)
}

func TestParseKeepsRowsOfEmptyCells(t *testing.T) {
	tbl, err := Parse("A,B\n1,2\n,\n\n3,4")
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"", ""}, tbl.Row(1))
	assert.Equal(t, []string{"3", "4"}, tbl.Row(2))
}

func TestParseCommaDelimited(t *testing.T) {
	text := "Tags , Count\r\n\"a,b\", 3\r\nc,4\r\n"

	tbl, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tags", "Count"}, tbl.Columns)
	assert.Equal(t, [][]string{{"a,b", "3"}, {"c", "4"}}, tbl.Rows)
}

func TestParseNormalization(t *testing.T) {
	tbl, err := Parse("A\t\tC\nx\n  \ny\tz\tw\textra")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "Column 2", "C"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"x", "", ""}, tbl.Row(0))
	assert.Equal(t, []string{"y", "z", "w", "extra"}, tbl.Row(1))
	assert.Nil(t, tbl.Row(2))
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\n  "} {
		tbl, err := Parse(text)
		require.NoError(t, err)
		assert.Empty(t, tbl.Columns)
		assert.Zero(t, tbl.Len())
	}
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, '\t', Delimiter("a\tb,c"))
	assert.Equal(t, ',', Delimiter("a,b"))
	assert.Equal(t, ',', Delimiter("single"))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("Tags\na,b\nc\n"), 0o644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tags"}, tbl.Columns)
	assert.Equal(t, 2, tbl.Len())

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Tags"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Sword", "a|b"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Shield"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"", " "}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Tags"}, tbl.Columns)
	assert.Equal(t, [][]string{{"Sword", "a|b"}, {"Shield", ""}}, tbl.Rows)
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	assert.Zero(t, tbl.Len())
	assert.Nil(t, tbl.Row(0))
	assert.Nil(t, tbl.Header())
}
