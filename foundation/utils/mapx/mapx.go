// File: mapx.go
// Title: Core Map Utilities
// Description: Generic map helpers for sorted iteration, shallow merging and
//              recursive merging of decoded configuration trees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used by config and log; added
//                      SortedKeys and DeepMerge

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	return Merge(m)
}

// DeepMerge merges override into base and returns a new map. Where both
// hold a nested map[string]interface{} under the same key the two are merged
// recursively; otherwise the override value wins. Neither input is modified.
func DeepMerge(base, override map[string]interface{}) map[string]interface{} {
	result := Merge(base)

	for k, v := range override {
		om, ook := v.(map[string]interface{})
		bm, bok := result[k].(map[string]interface{})
		if ook && bok {
			result[k] = DeepMerge(bm, om)
			continue
		}
		result[k] = v
	}

	return result
}
