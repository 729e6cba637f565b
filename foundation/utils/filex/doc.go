// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides the file helpers janitor needs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-19 v0.2.0: Reduced to existence checks and atomic writes

// Package filex provides existence checks and atomic file replacement.
//
// WriteAtomic is used for every file janitor produces, so an interrupted or
// failed run never leaves a half-written CSV behind:
//
//	err := filex.WriteAtomic("clean.csv", 0644, func(w io.Writer) error {
//		return tablex.WriteCSV(w, table)
//	})
//
// Failures carry the IO_ERROR code and the offending path as detail.
package filex
