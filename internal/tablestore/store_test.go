package tablestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/utils/tablex"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "test.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWriteAndReadTable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in, err := tablex.New([]string{"First Name", `odd "col"`},
		[]tablex.Cell{tablex.Text("Ann"), tablex.Null()},
		[]tablex.Cell{tablex.Text(""), tablex.Text("x")},
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteTable(ctx, "people", in); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	out, err := s.ReadTable(ctx, "people")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTableReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, _ := tablex.FromStrings([]string{"a"}, []string{"1"}, []string{"2"})
	second, _ := tablex.FromStrings([]string{"b", "c"}, []string{"3", "4"})

	if err := s.WriteTable(ctx, "t", first); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteTable(ctx, "t", second); err != nil {
		t.Fatal(err)
	}

	out, err := s.ReadTable(ctx, "t")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(second, out); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTableInvalid(t *testing.T) {
	s := openTestStore(t)

	err := s.WriteTable(context.Background(), "empty", &tablex.Table{})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}

	ragged := &tablex.Table{Columns: []string{"a", "b"}, Rows: [][]tablex.Cell{{tablex.Text("1")}}}
	err = s.WriteTable(context.Background(), "ragged", ragged)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestWriteTableProtectsJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.RecordRenames(ctx, "run-1", "people", []tablex.Rename{{Index: 0, From: "A", To: "a"}}); err != nil {
		t.Fatal(err)
	}

	tbl, _ := tablex.FromStrings([]string{"v"}, []string{"1"})
	for _, name := range []string{"janitor_renames", "JANITOR_RENAMES"} {
		if err := s.WriteTable(ctx, name, tbl); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("WriteTable(%q) error = %v, want INVALID_INPUT", name, err)
		}
	}

	records, err := s.Renames(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("journal should be intact, got %d records", len(records))
	}
}

func TestReadTableMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadTable(context.Background(), "nope")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestTablesHidesJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha"} {
		tbl, _ := tablex.FromStrings([]string{"v"})
		if err := s.WriteTable(ctx, name, tbl); err != nil {
			t.Fatal(err)
		}
	}

	names, err := s.Tables(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, names); diff != "" {
		t.Errorf("Tables mismatch (-want +got):\n%s", diff)
	}
}

func TestRenameJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	renames := []tablex.Rename{
		{Index: 0, From: "First Name", To: "first_name"},
		{Index: 2, From: "Größe", To: "groesse"},
	}
	if err := s.RecordRenames(ctx, "run-1", "people", renames); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordRenames(ctx, "run-2", "orders", renames[:1]); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordRenames(ctx, "run-3", "orders", nil); err != nil {
		t.Fatal(err)
	}

	got, err := s.Renames(ctx, "run-1")
	if err != nil {
		t.Fatal(err)
	}
	want := []RenameRecord{
		{RunID: "run-1", Table: "people", Index: 0, From: "First Name", To: "first_name"},
		{RunID: "run-1", Table: "people", Index: 2, From: "Größe", To: "groesse"},
	}
	ignore := cmpopts.IgnoreFields(RenameRecord{}, "ID", "CreatedAt")
	if diff := cmp.Diff(want, got, ignore); diff != "" {
		t.Errorf("Renames mismatch (-want +got):\n%s", diff)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Error("records need distinct IDs")
	}

	all, err := s.Renames(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("got %d records, want 3", len(all))
	}

	if err := s.RecordRenames(ctx, "", "people", renames); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("empty run ID error = %v", err)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(Config{}); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
