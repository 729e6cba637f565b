// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2026-10-19 v0.2.0: Reduced package surface

// Package mapx provides generic map helpers: Keys and SortedKeys for
// deterministic iteration, Merge and Clone for shallow copies, and DeepMerge
// for layering decoded configuration trees. All functions return new maps
// and never modify their arguments.
package mapx
