// File: table.go
// Title: Table Model
// Description: A minimal in-memory table of string cells with named columns,
//              the unit the column and cell cleaners operate on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"fmt"

	"github.com/msto63/janitor/foundation/core/errors"
)

// Cell is a single table value. Null marks an absent value, as opposed to
// an empty string.
type Cell struct {
	Value string
	Null  bool
}

// Text returns a non-null cell holding s
func Text(s string) Cell {
	return Cell{Value: s}
}

// Null returns an absent cell
func Null() Cell {
	return Cell{Null: true}
}

// String returns the value, or "NULL" for absent cells
func (c Cell) String() string {
	if c.Null {
		return "NULL"
	}
	return c.Value
}

// Table holds rows of cells under a header of column names. Every row has
// exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// New builds a table and checks that every row matches the header width
func New(columns []string, rows ...[]Cell) (*Table, error) {
	t := &Table{Columns: columns, Rows: rows}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromStrings builds a table from plain string rows; no cell is null
func FromStrings(columns []string, rows ...[]string) (*Table, error) {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, v := range row {
			cells[i][j] = Text(v)
		}
	}
	return New(columns, cells...)
}

// Validate reports the first row whose width differs from the header
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return errors.InvalidInput(errors.ModuleTablex, "validate",
				fmt.Sprintf("row %d has %d cells", i, len(row)),
				fmt.Sprintf("%d cells per row", len(t.Columns)))
		}
	}
	return nil
}

// ColumnIndex returns the position of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Cell, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}
