package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/filex"
	"github.com/msto63/janitor/foundation/utils/tablex"
)

// cellFlags overrides the [cells] config section
type cellFlags struct {
	enabled     bool
	profile     string
	workers     int
	emptyAsNull bool
	columns     []string
}

func (f *cellFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.enabled, "cells", false, "Also clean cell values")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "Cleaning profile for cells (default: cells.profile)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Rows cleaned in parallel (0: one per CPU)")
	cmd.Flags().BoolVar(&f.emptyAsNull, "empty-as-null", false, "Store cells that clean to nothing as NULL")
	cmd.Flags().StringSliceVar(&f.columns, "cell-columns", nil, "Clean only these (cleaned) columns")
}

func (f *cellFlags) options(a *app, cmd *cobra.Command) (tablex.CellOptions, error) {
	opts, err := a.cfg.Cells()
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		if opts.Pipeline, err = a.cfg.Profile(f.profile); err != nil {
			return opts, err
		}
	}
	if flags.Changed("workers") {
		opts.Workers = f.workers
	}
	if flags.Changed("empty-as-null") {
		opts.EmptyAsNull = f.emptyAsNull
	}
	if flags.Changed("cell-columns") {
		opts.Columns = f.columns
	}
	return opts, nil
}

// cleanTable renames the columns and, when enabled, cleans the cells
func (a *app) cleanTable(ctx context.Context, cmd *cobra.Command, t *tablex.Table, cols *columnFlags, cells *cellFlags) (*tablex.Table, []tablex.Rename, error) {
	colOpts, err := cols.options(a, cmd)
	if err != nil {
		return nil, nil, err
	}

	cleaned, renames, err := tablex.CleanColumns(t, colOpts, a.logger)
	if err != nil {
		return nil, nil, err
	}

	if cells.enabled {
		cellOpts, err := cells.options(a, cmd)
		if err != nil {
			return nil, nil, err
		}

		timer := a.logger.StartTimer("clean cells").
			WithField("rows", len(cleaned.Rows)).
			WithField("workers", cellOpts.Workers)
		if cleaned, err = tablex.CleanCells(ctx, cleaned, cellOpts); err != nil {
			timer.StopWithError(err)
			return nil, nil, err
		}
		timer.Stop()
	}

	a.logger.Info("table cleaned", mdwlog.Fields{
		"columns": len(cleaned.Columns),
		"rows":    len(cleaned.Rows),
		"renamed": len(renames),
	})
	return cleaned, renames, nil
}

func newCSVCmd(a *app) *cobra.Command {
	var (
		in, out string
		cols    columnFlags
		cells   cellFlags
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Clean the header (and cells) of a CSV file",
		Long: `Reads a CSV file with a header row, renames the columns to identifiers
and optionally cleans every cell, then writes the result as CSV.

Examples:
  janitor csv --in raw.csv --out clean.csv
  janitor csv --cells --profile ascii < raw.csv > clean.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeIn, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer closeIn()

			t, err := tablex.ReadCSV(r)
			if err != nil {
				return err
			}

			cleaned, _, err := a.cleanTable(cmd.Context(), cmd, t, &cols, &cells)
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, func(w io.Writer) error {
				return tablex.WriteCSV(w, cleaned)
			})
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "-", "Input CSV file (-: stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output CSV file (-: stdout)")
	cols.register(cmd)
	cells.register(cmd)
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to open input").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}
	return f, func() { f.Close() }, nil
}

// writeOutput writes to stdout for "-" and atomically replaces the file
// otherwise
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	return filex.WriteAtomic(path, 0644, write)
}
