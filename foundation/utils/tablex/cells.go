// File: cells.go
// Title: Parallel Cell Cleaning
// Description: Runs the string cleaning pipeline over table cells with a
//              bounded pool of goroutines, one row per task.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"context"
	"runtime"
	"sync"

	"github.com/msto63/janitor/foundation/core/errors"
	"github.com/msto63/janitor/foundation/utils/stringx"
)

// CellOptions controls CleanCells
type CellOptions struct {
	Pipeline    stringx.PipelineConfig
	Columns     []string // Columns to clean; empty means all
	EmptyAsNull bool     // Blank results become null cells
	Workers     int      // Concurrent rows; 0 means GOMAXPROCS
}

// DefaultCellOptions cleans every column with the default pipeline
func DefaultCellOptions() CellOptions {
	return CellOptions{Pipeline: stringx.DefaultPipelineConfig()}
}

// CleanCells returns a copy of t with CleanString applied to every non-null
// cell of the selected columns. Row order is preserved. Cancelling ctx stops
// scheduling new rows and returns ctx.Err().
func CleanCells(ctx context.Context, t *Table, opts CellOptions) (*Table, error) {
	if err := opts.Pipeline.TargetCase.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers < 0 {
		return nil, errors.InvalidInput(errors.ModuleTablex, "clean_cells", opts.Workers, "workers >= 0")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	selected, err := selectColumns(t, opts.Columns)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := t.Clone()
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range out.Rows {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(row []Cell) {
			defer wg.Done()
			defer func() { <-sem }()
			cleanRow(row, selected, opts)
		}(out.Rows[i])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// cleanRow cannot fail: the target case was validated up front
func cleanRow(row []Cell, selected []bool, opts CellOptions) {
	for j := range row {
		if !selected[j] || row[j].Null {
			continue
		}
		cleaned, _ := stringx.CleanString(row[j].Value, opts.Pipeline)
		if opts.EmptyAsNull && stringx.ToNoneIfEmpty(cleaned) == nil {
			row[j] = Null()
			continue
		}
		row[j] = Text(cleaned)
	}
}

func selectColumns(t *Table, names []string) ([]bool, error) {
	selected := make([]bool, len(t.Columns))
	if len(names) == 0 {
		for i := range selected {
			selected[i] = true
		}
		return selected, nil
	}

	for _, name := range names {
		i := t.ColumnIndex(name)
		if i < 0 {
			return nil, errors.NotFound(errors.ModuleTablex, "clean_cells", "column "+name)
		}
		selected[i] = true
	}
	return selected, nil
}
