// File: sections.go
// Title: janitor Configuration Sections
// Description: Typed views of the janitor configuration sections: named
//              cleaning profiles, column renaming, cell cleaning, logging and
//              the SQLite store.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/core/errors"
	"github.com/msto63/janitor/foundation/utils/stringx"
	"github.com/msto63/janitor/foundation/utils/tablex"
)

// DefaultProfile is used when no profile is named
const DefaultProfile = "default"

// builtinProfiles exist without configuration. A [profiles.<name>] table with
// the same name overrides individual keys.
var builtinProfiles = map[string]stringx.PipelineConfig{
	"default": stringx.DefaultPipelineConfig(),
	"ascii": {
		NormalizeUnicode:    true,
		NormalizeWhitespace: true,
		RemoveSpecialChars:  true,
	},
	"identifier": {
		NormalizeUnicode:    true,
		NormalizeWhitespace: true,
		RemoveSpecialChars:  true,
		TargetCase:          stringx.CaseSnake,
	},
}

// LogSettings holds the [log] section
type LogSettings struct {
	Level  string
	Format string
}

// Profile resolves the named cleaning profile. Keys come from
// [profiles.<name>] with environment overrides; missing keys fall back to the
// built-in profile of that name or to the default pipeline. An unknown case
// value fails with a configuration error.
func (c *Config) Profile(name string) (stringx.PipelineConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProfile
	}

	prefix := "profiles." + name
	base, builtin := builtinProfiles[name]
	if !builtin {
		if _, ok := c.getValue(prefix).(map[string]interface{}); !ok {
			return stringx.PipelineConfig{}, errors.NotFound(errors.ModuleConfig, "profile", name)
		}
		base = stringx.DefaultPipelineConfig()
	}

	target, err := stringx.ParseTargetCase(c.GetString(prefix+".case", base.TargetCase.String()))
	if err != nil {
		return stringx.PipelineConfig{}, mdwerror.Wrap(err, "profile "+name).
			WithOperation("config.Profile").
			WithDetail("profile", name)
	}

	return stringx.PipelineConfig{
		NormalizeUnicode:    c.GetBool(prefix+".normalize_unicode", base.NormalizeUnicode),
		NormalizeWhitespace: c.GetBool(prefix+".normalize_whitespace", base.NormalizeWhitespace),
		RemoveSpecialChars:  c.GetBool(prefix+".remove_special_chars", base.RemoveSpecialChars),
		TargetCase:          target,
	}, nil
}

// ProfileNames lists built-in and configured profile names, sorted
func (c *Config) ProfileNames() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range builtinProfiles {
		seen[name] = true
		names = append(names, name)
	}
	for _, name := range c.Keys("profiles") {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Columns reads the [columns] section on top of tablex.DefaultColumnOptions
func (c *Config) Columns() (tablex.ColumnOptions, error) {
	opts := tablex.DefaultColumnOptions()

	style, err := stringx.ParseCasingStyle(c.GetString("columns.case", opts.Case.String()))
	if err != nil {
		return opts, mdwerror.Wrap(err, "columns section").
			WithOperation("config.Columns")
	}

	opts.Case = style
	opts.ASCIIOnly = c.GetBool("columns.ascii_only", opts.ASCIIOnly)
	opts.Keep = c.GetString("columns.keep", opts.Keep)
	opts.Deduplicate = c.GetBool("columns.deduplicate", opts.Deduplicate)
	return opts, nil
}

// Cells reads the [cells] section. The pipeline comes from the profile
// named by cells.profile.
func (c *Config) Cells() (tablex.CellOptions, error) {
	opts := tablex.DefaultCellOptions()

	pipeline, err := c.Profile(c.GetString("cells.profile", DefaultProfile))
	if err != nil {
		return opts, err
	}
	opts.Pipeline = pipeline

	workers := c.GetInt("cells.workers", opts.Workers)
	if workers < 0 {
		return opts, errors.InvalidInput(errors.ModuleConfig, "cells", workers, "cells.workers >= 0")
	}
	opts.Workers = workers
	opts.EmptyAsNull = c.GetBool("cells.empty_as_null", opts.EmptyAsNull)
	opts.Columns = c.GetStringSlice("cells.columns")
	return opts, nil
}

// Logging reads the [log] section
func (c *Config) Logging() LogSettings {
	return LogSettings{
		Level:  c.GetString("log.level", "info"),
		Format: c.GetString("log.format", "console"),
	}
}

// DatabasePath reads sqlite.path, the default database for the sqlite command
func (c *Config) DatabasePath() string {
	return c.GetString("sqlite.path")
}
