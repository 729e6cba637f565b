package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/janitor/foundation/utils/stringx"
	"github.com/msto63/janitor/foundation/utils/tablex"
)

// columnFlags overrides the [columns] config section
type columnFlags struct {
	casing    string
	asciiOnly bool
	keep      string
	dedupe    bool
}

func (f *columnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.casing, "case", "", "Casing style (snake, kebab, camel, pascal)")
	cmd.Flags().BoolVar(&f.asciiOnly, "ascii-only", true, "Fold to ASCII and drop special characters")
	cmd.Flags().StringVar(&f.keep, "keep", "_-", "Characters kept by --ascii-only")
	cmd.Flags().BoolVar(&f.dedupe, "dedupe", false, "Suffix duplicate names instead of failing")
}

// options starts from the config file and applies the flags the user set
func (f *columnFlags) options(a *app, cmd *cobra.Command) (tablex.ColumnOptions, error) {
	opts, err := a.cfg.Columns()
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("case") {
		if opts.Case, err = stringx.ParseCasingStyle(f.casing); err != nil {
			return opts, err
		}
	}
	if flags.Changed("ascii-only") {
		opts.ASCIIOnly = f.asciiOnly
	}
	if flags.Changed("keep") {
		opts.Keep = f.keep
	}
	if flags.Changed("dedupe") {
		opts.Deduplicate = f.dedupe
	}
	return opts, nil
}

func newColumnsCmd(a *app) *cobra.Command {
	var (
		flags columnFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "columns [name...]",
		Short: "Rename column names to identifiers",
		Long: `Cleans column names: whitespace is normalized, accents are folded and
special characters dropped (--ascii-only), then the casing style applies.
Each argument is one column name; without arguments every line of stdin
is one name.

Examples:
  janitor columns "First Name" "Größe (cm)" userID
  head -1 data.csv | tr ',' '\n' | janitor columns --case camel --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(a, cmd)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				if names, err = inputLines(cmd.InOrStdin(), nil); err != nil {
					return err
				}
			}

			t, err := tablex.New(names)
			if err != nil {
				return err
			}
			cleaned, _, err := tablex.CleanColumns(t, opts, a.logger)
			if err != nil {
				return err
			}

			if plain {
				return renderList(cmd.OutOrStdout(), "CLEANED", cleaned.Columns, true)
			}
			return renderChanges(cmd.OutOrStdout(), changesOf(names, cleaned.Columns), false)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the cleaned names, one per line")
	return cmd
}

// changesOf pairs every original column with its cleaned name
func changesOf(from, to []string) []columnChange {
	changes := make([]columnChange, len(from))
	for i := range from {
		changes[i] = columnChange{Index: i, From: from[i], To: to[i]}
	}
	return changes
}

// renameChanges lists only the renamed columns
func renameChanges(renames []tablex.Rename) []columnChange {
	changes := make([]columnChange, len(renames))
	for i, r := range renames {
		changes[i] = columnChange{Index: r.Index, From: r.From, To: r.To}
	}
	return changes
}
