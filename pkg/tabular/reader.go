package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable loads a CSV or Excel file into a Table. Format is chosen by
// file extension. CSV decoding tries UTF-8 (with or without BOM) first and
// falls back to Windows-1252 and then Latin-1.
func ReadTable(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xls":
		return readExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func readCSV(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	text, err := decodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	table := NewTable(records[0])
	for _, record := range records[1:] {
		table.AppendRow(record)
	}
	return table, nil
}

// decodeBytes tries utf-8 first, then cp1252, then latin-1. cp1252 comes
// before latin-1 because the bytes that distinguish them (0x80-0x9F) are
// printable punctuation in cp1252 and control characters in latin-1, and
// non-utf-8 spreadsheets are overwhelmingly Windows exports.
func decodeBytes(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, enc := range []encoding.Encoding{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), nil
		}
	}
	return "", ErrUndecodableFile
}

func readExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	table := NewTable(rows[0])
	for _, row := range rows[1:] {
		table.AppendRow(row)
	}
	return table, nil
}
