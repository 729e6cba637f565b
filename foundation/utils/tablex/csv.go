// File: csv.go
// Title: CSV Input and Output
// Description: Reads and writes tables as CSV with a header row. Empty
//              fields read as empty strings; null cells write as empty fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"encoding/csv"
	stderrors "errors"
	"io"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

// ReadCSV parses r as CSV. The first record is the header; every following
// record must have the same number of fields.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, mdwerror.New("csv input has no header row").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("tablex.ReadCSV")
		}
		return nil, wrapCSVError(err, "read csv header")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, wrapCSVError(err, "read csv records")
	}

	rows := make([][]Cell, len(records))
	for i, record := range records {
		rows[i] = make([]Cell, len(record))
		for j, v := range record {
			rows[i][j] = Text(v)
		}
	}
	return New(header, rows...)
}

// WriteCSV writes t with its header to w
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return wrapCSVError(err, "write csv header")
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for j, c := range row {
			record[j] = c.Value
		}
		if err := writer.Write(record); err != nil {
			return wrapCSVError(err, "write csv record")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return wrapCSVError(err, "flush csv")
	}
	return nil
}

func wrapCSVError(err error, message string) error {
	code := mdwerror.CodeIOError
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		code = mdwerror.CodeInvalidFormat
	}
	return mdwerror.Wrap(err, message).WithCode(code).WithOperation("tablex.csv")
}
