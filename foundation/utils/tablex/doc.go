// File: doc.go
// Title: Package Documentation for tablex
// Description: Package tablex applies the stringx cleaning pipeline to tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package tablex cleans tabular data: column headers become canonical
// identifiers and cell text runs through the stringx pipeline.
//
// Column names go through whitespace normalization, then (with ASCIIOnly)
// unicode folding and special character removal, then a casing style:
//
//	t, _ := tablex.FromStrings([]string{"First Name", "Größe (cm)"})
//	cleaned, renames, err := tablex.CleanColumns(t, tablex.DefaultColumnOptions(), nil)
//	// cleaned.Columns == []string{"first_name", "groesse_cm"}
//
// Cells are cleaned concurrently, one row per goroutine with at most
// CellOptions.Workers rows in flight:
//
//	opts := tablex.DefaultCellOptions()
//	opts.EmptyAsNull = true
//	cleaned, err := tablex.CleanCells(ctx, t, opts)
//
// ReadCSV and WriteCSV move tables in and out of CSV with a header row.
//
// All functions return new tables and never modify their input.
package tablex
