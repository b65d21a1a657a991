package tabular

// Table is an ordered table of rows and columns with stable column identity.
// Column order is significant; rows are normalized to the column count on
// read, so Rows[i][j] is always addressable for j < len(Columns).
type Table struct {
	// Columns holds the header names in their original left-to-right order.
	Columns []string

	// Rows holds the cell text, row-major.
	Rows [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell returns the text at (row, column name). Missing columns yield "".
func (t *Table) Cell(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// Column returns a copy of all cell values in the named column, in row order.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// AppendRow adds a row, padding or truncating it to the column count.
func (t *Table) AppendRow(row []string) {
	t.Rows = append(t.Rows, normalizeRow(row, len(t.Columns)))
}

func normalizeRow(row []string, width int) []string {
	normalized := make([]string, width)
	copy(normalized, row)
	return normalized
}
