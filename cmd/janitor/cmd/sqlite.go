package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/janitor/foundation/core/errors"
	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/filex"
	"github.com/msto63/janitor/foundation/utils/stringx"
	"github.com/msto63/janitor/internal/tablestore"
)

// openStore opens the existing database at --db, falling back to sqlite.path
// from the config file
func (a *app) openStore(dbPath string) (*tablestore.Store, error) {
	dbPath = stringx.FirstNonBlank(dbPath, a.cfg.DatabasePath())
	if dbPath == "" {
		return nil, errors.InvalidInput(errors.ModuleTablestore, "open", dbPath, "--db or sqlite.path in the config file")
	}
	if !filex.Exists(dbPath) {
		return nil, errors.NotFound(errors.ModuleTablestore, "open", "database "+dbPath)
	}
	return tablestore.Open(tablestore.Config{Path: dbPath})
}

func newSQLiteCmd(a *app) *cobra.Command {
	var (
		dbPath   string
		table    string
		outTable string
		plain    bool
		cols     columnFlags
		cells    cellFlags
	)

	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Copy a SQLite table with cleaned column names",
		Long: `Reads a table from a SQLite database, cleans its column names (and
optionally its cells) and writes the result to another table. Every rename
is recorded in the janitor_renames journal under the run ID of this
invocation.

Examples:
  janitor sqlite --db data.db --table "Raw Orders"
  janitor sqlite --db data.db --table people --out-table people --cells
  janitor sqlite tables --db data.db
  janitor sqlite renames --db data.db --run <run-id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if table == "" {
				return errors.InvalidInput(errors.ModuleTablestore, "sqlite", table, "--table")
			}
			if outTable == "" {
				outTable = table + "_clean"
			}

			store, err := a.openStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			t, err := store.ReadTable(ctx, table)
			if err != nil {
				return err
			}

			cleaned, renames, err := a.cleanTable(ctx, cmd, t, &cols, &cells)
			if err != nil {
				return err
			}

			if err := store.WriteTable(ctx, outTable, cleaned); err != nil {
				return err
			}
			if err := store.RecordRenames(ctx, a.logger.RunID(), outTable, renames); err != nil {
				return err
			}

			a.logger.Info("table written", mdwlog.Fields{
				"from": table,
				"to":   outTable,
			})
			return renderChanges(cmd.OutOrStdout(), renameChanges(renames), plain)
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database (default: sqlite.path)")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Plain tab-separated output")
	cmd.Flags().StringVarP(&table, "table", "t", "", "Source table")
	cmd.Flags().StringVar(&outTable, "out-table", "", "Destination table (default: <table>_clean)")
	cols.register(cmd)
	cells.register(cmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "tables",
			Short: "List the tables of the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()

				names, err := store.Tables(cmd.Context())
				if err != nil {
					return err
				}
				return renderList(cmd.OutOrStdout(), "TABLE", names, plain)
			},
		},
		newRenamesCmd(a, &dbPath, &plain),
	)

	return cmd
}

func newRenamesCmd(a *app, dbPath *string, plain *bool) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "renames",
		Short: "Show the column rename journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(*dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Renames(cmd.Context(), runID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if *plain {
				for _, r := range records {
					fmt.Fprintf(out, "%s\t%s\t%d\t%s\t%s\n", r.RunID, r.Table, r.Index+1, r.From, r.To)
				}
				return nil
			}

			byTable := make(map[string][]columnChange)
			var order []string
			for _, r := range records {
				key := r.RunID + "  " + r.Table
				if _, ok := byTable[key]; !ok {
					order = append(order, key)
				}
				byTable[key] = append(byTable[key], columnChange{Index: r.Index, From: r.From, To: r.To})
			}
			for _, key := range order {
				fmt.Fprintln(out, headerStyle.Render(key))
				if err := renderChanges(out, byTable[key], false); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Only this run (default: all runs)")
	return cmd
}
