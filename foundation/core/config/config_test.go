// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, typed getters, environment
//              overrides and defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Adjusted to the reduced loader

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

const sampleTOML = `
[columns]
case = "kebab"
ascii_only = false

[cells]
workers = 3
columns = ["name", "city"]

[profiles.display]
case = "title"
remove_special_chars = true
`

const sampleYAML = `
columns:
  case: camel
  deduplicate: true
cells:
  workers: 2
  empty_as_null: true
profiles:
  shout:
    case: upper
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "janitor.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
	if got := cfg.GetString("columns.case"); got != "kebab" {
		t.Errorf("columns.case = %q", got)
	}
	if got := cfg.GetBool("columns.ascii_only", true); got {
		t.Error("columns.ascii_only should be false")
	}
	if got := cfg.GetInt("cells.workers"); got != 3 {
		t.Errorf("cells.workers = %d", got)
	}
	if diff := cmp.Diff([]string{"name", "city"}, cfg.GetStringSlice("cells.columns")); diff != "" {
		t.Errorf("cells.columns mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Has("profiles.display.case") {
		t.Error("Has(profiles.display.case) = false")
	}
	if cfg.Has("profiles.missing") {
		t.Error("Has(profiles.missing) = true")
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "janitor.yml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
	if got := cfg.GetString("columns.case"); got != "camel" {
		t.Errorf("columns.case = %q", got)
	}
	if got := cfg.GetInt("cells.workers"); got != 2 {
		t.Errorf("cells.workers = %d", got)
	}
	if diff := cmp.Diff([]string{"shout"}, cfg.Keys("profiles")); diff != "" {
		t.Errorf("Keys(profiles) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("error = %v, want MISSING_CONFIG", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "broken.toml", "[columns\ncase ="))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "broken.yaml", "columns: [unclosed"))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatAuto, "")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if cfg.GetString("profiles.display.case") != "title" {
		t.Error("profiles.display.case not loaded")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML, "JANITOR")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JANITOR_COLUMNS_CASE", "pascal")
	t.Setenv("JANITOR_CELLS_WORKERS", "8")
	t.Setenv("JANITOR_COLUMNS_ASCII_ONLY", "true")
	t.Setenv("JANITOR_CELLS_COLUMNS", "a, b,,c")

	if got := cfg.GetString("columns.case"); got != "pascal" {
		t.Errorf("columns.case = %q, want env override", got)
	}
	if got := cfg.GetInt("cells.workers"); got != 8 {
		t.Errorf("cells.workers = %d, want 8", got)
	}
	if !cfg.GetBool("columns.ascii_only") {
		t.Error("columns.ascii_only should be overridden to true")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, cfg.GetStringSlice("cells.columns")); diff != "" {
		t.Errorf("cells.columns mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, "janitor.toml", sampleTOML)
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"columns": map[string]interface{}{"case": "snake", "keep": "_"},
			"log":     map[string]interface{}{"level": "debug"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("columns.case"); got != "kebab" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if got := cfg.GetString("columns.keep"); got != "_" {
		t.Errorf("default in nested table lost, got %q", got)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("default section lost, got %q", got)
	}
}

func TestGetterDefaults(t *testing.T) {
	cfg := Empty("")
	if cfg.GetString("a.b", "x") != "x" {
		t.Error("GetString default not applied")
	}
	if cfg.GetInt("a.b", 7) != 7 {
		t.Error("GetInt default not applied")
	}
	if !cfg.GetBool("a.b", true) {
		t.Error("GetBool default not applied")
	}
	if cfg.GetStringSlice("a.b") != nil {
		t.Error("GetStringSlice without default should be nil")
	}
}

func TestFormatEnvKey(t *testing.T) {
	cfg := Empty("janitor")
	if got := cfg.formatEnvKey("profiles.my-profile.case"); got != "JANITOR_PROFILES_MY_PROFILE_CASE" {
		t.Errorf("formatEnvKey = %q", got)
	}
}
