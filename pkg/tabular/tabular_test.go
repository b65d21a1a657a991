package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "input.csv", []byte("id,comment\n1,Bonjour\n2,Привет\n"))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "comment"}, table.Columns)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Привет", table.Cell(1, "comment"))
}

func TestReadCSVWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,comment\n1,hello\n")...)
	path := writeFile(t, "bom.csv", data)

	table, err := ReadTable(path)
	require.NoError(t, err)
	// The BOM must not leak into the first header name.
	assert.Equal(t, []string{"id", "comment"}, table.Columns)
}

func TestReadCSVWindows1252(t *testing.T) {
	// "café" with an 0xE9 byte, invalid as UTF-8.
	path := writeFile(t, "legacy.csv", []byte("name\ncaf\xe9\n"))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "café", table.Cell(0, "name"))
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", []byte("a,b,c\n1,2\n1,2,3,4\n"))

	table, err := ReadTable(path)
	require.NoError(t, err)
	// Short rows are padded, long rows truncated to the header width.
	assert.Equal(t, []string{"1", "2", ""}, table.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[1])
}

func TestReadCSVEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", nil)
	_, err := ReadTable(path)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.json", []byte("{}"))
	_, err := ReadTable(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCSVRoundTrip(t *testing.T) {
	table := NewTable([]string{"id", "comment", "comment_en"})
	table.AppendRow([]string{"1", "Отличный продукт!", "Excellent product!"})
	table.AppendRow([]string{"2", "with, comma", "and \"quotes\""})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTable(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3], "missing UTF-8 BOM")

	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, got.Columns)
	assert.Equal(t, table.Rows, got.Rows)
}

func TestExcelRoundTrip(t *testing.T) {
	table := NewTable([]string{"id", "comment"})
	table.AppendRow([]string{"1", "こんにちは"})
	table.AppendRow([]string{"2", "hello"})

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteTable(table, path))

	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, got.Columns)
	assert.Equal(t, table.Rows, got.Rows)
}

func TestTableAccessors(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	table.AppendRow([]string{"1", "2"})

	assert.Equal(t, 1, table.ColumnIndex("b"))
	assert.Equal(t, -1, table.ColumnIndex("z"))
	assert.True(t, table.HasColumn("a"))
	assert.Equal(t, "", table.Cell(5, "a"))
	assert.Equal(t, []string{"2"}, table.Column("b"))
	assert.Nil(t, table.Column("z"))
}
