// File: columns.go
// Title: Column Name Cleaning
// Description: Renames table columns to canonical identifiers: whitespace
//              normalization, optional ASCII folding with special character
//              removal, then a casing style.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"strconv"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/core/errors"
	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/stringx"
)

// ColumnOptions controls CleanColumns
type ColumnOptions struct {
	Case        stringx.CasingStyle `json:"case" yaml:"case" toml:"case"`
	ASCIIOnly   bool                `json:"ascii_only" yaml:"ascii_only" toml:"ascii_only"`
	Keep        string              `json:"keep" yaml:"keep" toml:"keep"`
	Deduplicate bool                `json:"deduplicate" yaml:"deduplicate" toml:"deduplicate"`
}

// DefaultColumnOptions renames to ASCII snake_case, keeping '_' and '-'
func DefaultColumnOptions() ColumnOptions {
	return ColumnOptions{
		Case:      stringx.Snake,
		ASCIIOnly: true,
		Keep:      "_-",
	}
}

// Rename records one changed column name
type Rename struct {
	Index int    `json:"index"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// CleanColumnName applies the column pipeline to a single name
func CleanColumnName(name string, opts ColumnOptions) (string, error) {
	name = stringx.NormalizeWhitespace(name)
	if opts.ASCIIOnly {
		name = stringx.RemoveSpecialCharacters(stringx.NormalizeUnicode(name), opts.Keep)
	}
	return stringx.Compose(stringx.Tokenize(name), opts.Case)
}

// CleanColumns returns a copy of t with cleaned column names and the list of
// names that changed. Two columns cleaning to the same name fail with
// DUPLICATE_ENTRY unless Deduplicate is set, in which case later ones get a
// numeric suffix ("name_2"). A column that cleans to nothing is named
// "column_<n>" with its 1-based position. logger may be nil.
func CleanColumns(t *Table, opts ColumnOptions, logger *mdwlog.Logger) (*Table, []Rename, error) {
	if !opts.Case.IsValid() {
		return nil, nil, errors.ConfigError(errors.ModuleTablex, "clean_columns",
			"casing style", opts.Case, stringx.CasingStyles())
	}
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	logger = mdwlog.OrDiscard(logger)

	out := t.Clone()
	seen := make(map[string]int, len(t.Columns))
	var renames []Rename

	for i, original := range t.Columns {
		cleaned, err := CleanColumnName(original, opts)
		if err != nil {
			return nil, nil, err
		}
		if cleaned == "" {
			cleaned = "column_" + strconv.Itoa(i+1)
		}

		if first, dup := seen[cleaned]; dup {
			if !opts.Deduplicate {
				return nil, nil, mdwerror.New("columns "+strconv.Quote(t.Columns[first])+
					" and "+strconv.Quote(original)+" both clean to "+strconv.Quote(cleaned)).
					WithCode(mdwerror.CodeDuplicateEntry).
					WithOperation("tablex.CleanColumns").
					WithDetail("module", errors.ModuleTablex).
					WithDetail("column", cleaned)
			}
			cleaned = uniqueName(cleaned, seen)
		}
		seen[cleaned] = i
		out.Columns[i] = cleaned

		if cleaned != original {
			renames = append(renames, Rename{Index: i, From: original, To: cleaned})
			logger.Debug("renamed column", mdwlog.Fields{
				"index": i,
				"from":  original,
				"to":    cleaned,
			})
		}
	}

	return out, renames, nil
}

func uniqueName(base string, seen map[string]int) string {
	for n := 2; ; n++ {
		candidate := base + "_" + strconv.Itoa(n)
		if _, taken := seen[candidate]; !taken {
			return candidate
		}
	}
}
