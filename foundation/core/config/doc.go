// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads janitor settings from TOML or YAML files
//              with environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: janitor sections, discovery paths and validation

/*
Package config loads janitor settings.

A configuration file is TOML or YAML, chosen by extension. It has five
sections:

	[profiles.display]          # named cleaning pipelines
	normalize_unicode = true
	normalize_whitespace = true
	remove_special_chars = false
	case = "title"

	[columns]                   # column renaming
	case = "snake"
	ascii_only = true
	keep = "_-"
	deduplicate = false

	[cells]                     # cell cleaning
	profile = "default"
	workers = 4
	empty_as_null = true
	columns = ["name", "city"]

	[log]
	level = "info"
	format = "console"

	[sqlite]
	path = "data.db"

Every key can be overridden from the environment: columns.case is read from
JANITOR_COLUMNS_CASE, profiles.display.case from JANITOR_PROFILES_DISPLAY_CASE.

The profiles "default", "ascii" and "identifier" exist without any file.

# Usage

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	if err := cfg.Validate().Err(); err != nil {
		return err
	}
	pipeline, err := cfg.Profile("identifier")

Values outside a closed set (case names, casing styles) are configuration
errors, never silently replaced by defaults.
*/
package config
