// Package log provides structured logging for janitor.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent fields, a run ID
//              that ties together all entries of one invocation, and JSON,
//              text, console and logfmt output. Structured errors from the
//              error package are logged with their code and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Run IDs, Discard logger, lipgloss console format
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("tablex").
//		WithRunID(runID)
//
//	logger.Info("columns cleaned", log.Int("renamed", 3))
//	logger.Debug("column renamed", log.Fields{"from": "First Name", "to": "first_name"})
//
//	timer := logger.StartTimer("clean_cells")
//	// ... work
//	timer.Stop()
//
// Library packages accept a nil *Logger and fall back to Discard.
package log
