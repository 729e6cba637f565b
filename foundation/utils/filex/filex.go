// File: filex.go
// Title: Core File Utilities
// Description: File existence checks, directory creation and atomic file
//              replacement for the janitor file outputs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to existence checks and atomic writes

package filex

import (
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ===============================
// Writing
// ===============================

// EnsureDir creates the parent directory of path and all its parents
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ioError(err, "failed to create directory", dir)
	}
	return nil
}

// WriteAtomic writes path through a temporary file in the same directory
// and renames it into place once write succeeds. On any error the temporary
// file is removed and an existing file at path is left untouched.
func WriteAtomic(path string, perm os.FileMode, write func(io.Writer) error) (err error) {
	if err := EnsureDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError(err, "failed to create temporary file", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return ioError(err, "failed to set file mode", path)
	}
	if err = tmp.Close(); err != nil {
		return ioError(err, "failed to close temporary file", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioError(err, "failed to replace file", path)
	}
	return nil
}

func ioError(err error, message, path string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeIOError).
		WithDetail("path", path)
}
