package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/janitor/foundation/core/config"
	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/stringx"
	"github.com/msto63/janitor/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the janitor command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "janitor",
		Short: "janitor - Text and table cleaning",
		Long: `janitor turns messy text into canonical identifiers and clean values.

Commands:
  clean     - Run the cleaning pipeline over text
  tokenize  - Split text into words
  columns   - Rename column names to identifiers
  csv       - Clean the header (and cells) of a CSV file
  sqlite    - Copy a SQLite table with cleaned column names`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: ./janitor.toml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (console, text, json, logfmt)")

	rootCmd.AddCommand(
		newCleanCmd(a),
		newTokenizeCmd(a),
		newColumnsCmd(a),
		newCSVCmd(a),
		newSQLiteCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the janitor CLI and reports a failure on stderr
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup loads and validates the configuration and builds the run logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if err := a.cfg.Validate().Err(); err != nil {
		return err
	}

	settings := a.cfg.Logging()
	if a.verbose {
		settings.Level = "debug"
	}
	if a.logFormat != "" {
		settings.Format = a.logFormat
	}

	logCfg := logging.DefaultLoggerConfig("janitor")
	logCfg.Level = stringx.FirstNonBlank(settings.Level, logCfg.Level)
	logCfg.Format = stringx.FirstNonBlank(settings.Format, logCfg.Format)
	logCfg.Output = cmd.ErrOrStderr()

	a.logger, err = logging.NewLogger(logCfg)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"command": cmd.Name(),
		"config":  a.cfg.FilePath(),
	})
	return nil
}

// inputLines returns args joined as a single line, or the lines of in when
// no args are given
func inputLines(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
