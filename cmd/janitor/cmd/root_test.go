package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/janitor/foundation/core/errors"
)

// execute runs the CLI with a fresh command tree
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig writes a TOML config file and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "janitor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := writeConfig(t, "[colums]\ncase = \"snake\"\n")

	_, _, err := execute(t, "", "--config", cfg, "clean", "x")
	if !errors.IsConfigError(err) {
		t.Errorf("error = %v, want config error", err)
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "clean", "x")
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestVerboseJSONLogging(t *testing.T) {
	cfg := writeConfig(t, "")

	_, stderr, err := execute(t, "", "--config", cfg, "--verbose", "--log-format", "json", "clean", "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, `"message":"configuration loaded"`) || !strings.Contains(stderr, `"run_id"`) {
		t.Errorf("unexpected log output: %s", stderr)
	}
}

func TestLogLevelFromConfig(t *testing.T) {
	cfg := writeConfig(t, "[log]\nlevel = \"error\"\nformat = \"text\"\n")

	_, stderr, err := execute(t, "a,b\n1,2\n", "--config", cfg, "csv")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("error level should silence info logs, got %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "--config", writeConfig(t, ""), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "janitor v1.0.0\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}
