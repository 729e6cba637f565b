package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/stringx"
)

type cleanOptions struct {
	profile      string
	unicode      bool
	whitespace   bool
	specialChars bool
	targetCase   string
	skipEmpty    bool
}

func newCleanCmd(a *app) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean [text...]",
		Short: "Run the cleaning pipeline over text",
		Long: `Cleans text with unicode folding, whitespace normalization, special
character removal and case conversion. Without arguments every line of
stdin is cleaned separately.

The stages start from a profile (built-in: default, ascii, identifier, or
[profiles.<name>] in the config file); flags override single stages.

Examples:
  janitor clean "  Héllo   Wörld  "
  janitor clean --case snake "First Name"
  janitor clean --profile identifier < names.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClean(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Cleaning profile (default: default)")
	cmd.Flags().BoolVar(&opts.unicode, "unicode", true, "Fold accented and special Latin letters to ASCII")
	cmd.Flags().BoolVar(&opts.whitespace, "whitespace", true, "Trim and collapse whitespace")
	cmd.Flags().BoolVar(&opts.specialChars, "special-chars", false, "Remove characters other than ASCII letters, digits and spaces")
	cmd.Flags().StringVarP(&opts.targetCase, "case", "c", "", "Target case (none, snake, kebab, camel, pascal, title, upper, lower)")
	cmd.Flags().BoolVar(&opts.skipEmpty, "skip-empty", false, "Drop lines that clean to nothing")

	return cmd
}

// pipeline resolves the profile and applies the flags the user set
func (o *cleanOptions) pipeline(a *app, cmd *cobra.Command) (stringx.PipelineConfig, error) {
	cfg, err := a.cfg.Profile(o.profile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("unicode") {
		cfg.NormalizeUnicode = o.unicode
	}
	if flags.Changed("whitespace") {
		cfg.NormalizeWhitespace = o.whitespace
	}
	if flags.Changed("special-chars") {
		cfg.RemoveSpecialChars = o.specialChars
	}
	if flags.Changed("case") {
		cfg.TargetCase, err = stringx.ParseTargetCase(o.targetCase)
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (a *app) runClean(cmd *cobra.Command, args []string, opts *cleanOptions) error {
	pipeline, err := opts.pipeline(a, cmd)
	if err != nil {
		return err
	}

	lines, err := inputLines(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	a.logger.Debug("cleaning text", mdwlog.Fields{
		"lines":   len(lines),
		"unicode": pipeline.NormalizeUnicode,
		"special": pipeline.RemoveSpecialChars,
		"case":    pipeline.TargetCase.String(),
		"profile": opts.profile,
	})

	out := cmd.OutOrStdout()
	for _, line := range lines {
		cleaned, err := stringx.CleanString(line, pipeline)
		if err != nil {
			return err
		}
		if opts.skipEmpty && stringx.ToNoneIfEmpty(cleaned) == nil {
			continue
		}
		fmt.Fprintln(out, cleaned)
	}
	return nil
}
