// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for existence checks and atomic writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: Atomic write tests

package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name                  string
		path                  string
		exists, isFile, isDir bool
	}{
		{"file", file, true, true, false},
		{"directory", dir, true, false, true},
		{"missing", missing, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Exists(tt.path) != tt.exists {
				t.Errorf("Exists(%q) = %v", tt.path, !tt.exists)
			}
			if IsFile(tt.path) != tt.isFile {
				t.Errorf("IsFile(%q) = %v", tt.path, !tt.isFile)
			}
			if IsDir(tt.path) != tt.isDir {
				t.Errorf("IsDir(%q) = %v", tt.path, !tt.isDir)
			}
		})
	}
}

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	err := WriteAtomic(path, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "a,b\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteAtomicKeepsOriginalOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	failure := errors.New("boom")
	err := WriteAtomic(path, 0644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("error = %v, want %v", err, failure)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("original file changed to %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestEnsureDirFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(filepath.Join(blocker, "sub", "x.db"))
	if !mdwerror.HasCode(err, mdwerror.CodeIOError) {
		t.Errorf("error = %v, want IO_ERROR", err)
	}
}
