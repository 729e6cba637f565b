// ============================================================================
// janitor - Text and table cleaning toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its libraries
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for janitor components
const (
	// Release version of the janitor CLI
	Janitor = "1.0.0"

	// Library versions
	Stringx = "1.0.0"
	Tablex  = "1.0.0"

	// Rename journal schema
	Tablestore = "1.0.0"
)

// Build metadata, set with -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "tablex":
		return Tablex
	case "tablestore":
		return Tablestore
	default:
		return Janitor
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Janitor,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
