// Package tablestore persists janitor tables and the column rename journal
// in SQLite.
package tablestore

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/core/errors"
	"github.com/msto63/janitor/foundation/utils/filex"
	"github.com/msto63/janitor/foundation/utils/tablex"
)

// journalTable is the rename journal; Tables never lists it
const journalTable = "janitor_renames"

// RenameRecord is one journaled column rename
type RenameRecord struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Table     string    `json:"table"`
	Index     int       `json:"index"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"created_at"`
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./janitor.db",
	}
}

// Store reads and writes tables in a SQLite database
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the database at cfg.Path
func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.InvalidInput(errors.ModuleTablestore, "open", cfg.Path, "a database path")
	}

	if err := filex.EnsureDir(cfg.Path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "open")
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "open")
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ` + journalTable + ` (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		table_name TEXT NOT NULL,
		column_index INTEGER NOT NULL,
		from_name TEXT NOT NULL,
		to_name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_janitor_renames_run ON ` + journalTable + `(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Tables lists user tables, sorted by name
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != ?
		ORDER BY name
	`, journalTable)
	if err != nil {
		return nil, dbError(err, "failed to list tables", "tables")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dbError(err, "failed to scan table name", "tables")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReadTable loads every row of the named table. Values are read as text;
// SQL NULL becomes a null cell.
func (s *Store) ReadTable(ctx context.Context, name string) (*tablex.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireTable(ctx, name); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, dbError(err, "failed to query table", "read_table").WithDetail("table", name)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, dbError(err, "failed to read columns", "read_table").WithDetail("table", name)
	}

	table := &tablex.Table{Columns: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, dbError(err, "failed to scan row", "read_table").WithDetail("table", name)
		}
		row := make([]tablex.Cell, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = tablex.Text(v.String)
			} else {
				row[i] = tablex.Null()
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate rows", "read_table").WithDetail("table", name)
	}

	return table, nil
}

// WriteTable stores t under name with TEXT columns, replacing any existing
// table of that name. The write is a single transaction.
func (s *Store) WriteTable(ctx context.Context, name string, t *tablex.Table) error {
	if strings.EqualFold(name, journalTable) {
		return errors.InvalidInput(errors.ModuleTablestore, "write_table", name, "a table name other than "+journalTable)
	}
	if len(t.Columns) == 0 {
		return errors.InvalidInput(errors.ModuleTablestore, "write_table", name, "at least one column")
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin transaction", "write_table")
	}
	defer tx.Rollback()

	quoted := make([]string, len(t.Columns))
	placeholders := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		quoted[i] = quoteIdent(c) + " TEXT"
		placeholders[i] = "?"
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return dbError(err, "failed to drop table", "write_table").WithDetail("table", name)
	}
	if _, err := tx.ExecContext(ctx, "CREATE TABLE "+quoteIdent(name)+" ("+strings.Join(quoted, ", ")+")"); err != nil {
		return dbError(err, "failed to create table", "write_table").WithDetail("table", name)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+quoteIdent(name)+" VALUES ("+strings.Join(placeholders, ", ")+")")
	if err != nil {
		return dbError(err, "failed to prepare insert", "write_table").WithDetail("table", name)
	}
	defer stmt.Close()

	args := make([]interface{}, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range row {
			if c.Null {
				args[i] = nil
			} else {
				args[i] = c.Value
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return dbError(err, "failed to insert row", "write_table").WithDetail("table", name)
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit", "write_table").WithDetail("table", name)
	}
	return nil
}

// RecordRenames journals the renames of one table under runID
func (s *Store) RecordRenames(ctx context.Context, runID, table string, renames []tablex.Rename) error {
	if runID == "" {
		return errors.InvalidInput(errors.ModuleTablestore, "record_renames", runID, "a run ID")
	}
	if len(renames) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin transaction", "record_renames")
	}
	defer tx.Rollback()

	now := time.Now()
	for _, r := range renames {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO `+journalTable+` (id, run_id, table_name, column_index, from_name, to_name, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, table, r.Index, r.From, r.To, now)
		if err != nil {
			return dbError(err, "failed to record rename", "record_renames").WithDetail("table", table)
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit", "record_renames")
	}
	return nil
}

// Renames returns the journal of one run, ordered by table and column
// position. An empty runID returns every run.
func (s *Store) Renames(ctx context.Context, runID string) ([]RenameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, run_id, table_name, column_index, from_name, to_name, created_at
		FROM ` + journalTable
	var args []interface{}
	if runID != "" {
		query += " WHERE run_id = ?"
		args = append(args, runID)
	}
	query += " ORDER BY created_at, table_name, column_index"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query renames", "renames")
	}
	defer rows.Close()

	var records []RenameRecord
	for rows.Next() {
		var r RenameRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.Table, &r.Index, &r.From, &r.To, &r.CreatedAt); err != nil {
			return nil, dbError(err, "failed to scan rename", "renames")
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) requireTable(ctx context.Context, name string) error {
	var found string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&found)
	if err == sql.ErrNoRows {
		return errors.NotFound(errors.ModuleTablestore, "read_table", "table "+name)
	}
	if err != nil {
		return dbError(err, "failed to look up table", "read_table").WithDetail("table", name)
	}
	return nil
}

// quoteIdent quotes a SQLite identifier, doubling embedded quotes
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func dbError(err error, message, operation string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation("tablestore." + operation).
		WithDetail("module", errors.ModuleTablestore)
}
