// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks a loaded configuration before any input is processed:
//              known sections only, every profile resolvable, column and cell
//              settings valid, log level and format parseable.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Replaced generic rule sets with janitor section checks

package config

import (
	"strings"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/mapx"
)

var knownSections = map[string]bool{
	"profiles": true,
	"columns":  true,
	"cells":    true,
	"log":      true,
	"sqlite":   true,
}

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) add(err error) {
	if err == nil {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, err.Error())
}

// Err returns nil for a valid result and a configuration error listing
// every problem otherwise
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate checks all janitor sections and collects every problem found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, section := range mapx.SortedKeys(c.data) {
		if !knownSections[section] {
			result.add(mdwerror.New("unknown section " + section).
				WithCode(mdwerror.CodeInvalidConfig))
		}
	}

	for _, name := range c.ProfileNames() {
		_, err := c.Profile(name)
		result.add(err)
	}

	_, err := c.Columns()
	result.add(err)

	_, err = c.Cells()
	result.add(err)

	settings := c.Logging()
	if _, err := mdwlog.ParseLevel(settings.Level); err != nil {
		result.add(err)
	}
	if _, err := mdwlog.ParseFormat(settings.Format); err != nil {
		result.add(err)
	}

	return result
}
