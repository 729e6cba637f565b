// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds a janitor configuration file in the working directory
//              or the user configuration directory when none is given on the
//              command line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: janitor search paths; optional discovery yields an
//                      empty config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try for each filename
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches ./janitor.{toml,yaml,yml}, ./.janitor.*
// and <user config dir>/janitor/janitor.*
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "janitor"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"janitor", ".janitor"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration, or a not-found error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required {
			return Empty(options.EnvPrefix), nil
		}
		return nil, err
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if filex.IsFile(path) {
			return path, nil
		}
	}

	return "", mdwerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path discovery would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
