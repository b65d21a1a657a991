package tabular

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .csv, .xlsx and .xls.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyTable is returned when a file contains no header row.
	ErrEmptyTable = errors.New("file contains no header row")

	// ErrUndecodableFile is returned when no supported encoding can decode
	// a CSV file.
	ErrUndecodableFile = errors.New("could not decode file with any supported encoding")
)
