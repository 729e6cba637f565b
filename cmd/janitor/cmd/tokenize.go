package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/janitor/foundation/core/log"
	"github.com/msto63/janitor/foundation/utils/stringx"
)

func newTokenizeCmd(a *app) *cobra.Command {
	var compose string

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Split text into words",
		Long: `Splits text on whitespace, '_' and '-' and on letter-case boundaries,
printing one word per line. With --compose the words are joined in the
given casing style instead.

Examples:
  janitor tokenize myHTTPRequest
  janitor tokenize --compose kebab "XMLHttpRequest"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			var style stringx.CasingStyle
			if compose != "" {
				if style, err = stringx.ParseCasingStyle(compose); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				words := stringx.Tokenize(stringx.NormalizeWhitespace(line))
				a.logger.Trace("tokenized", mdwlog.Fields{"words": len(words)})

				if compose == "" {
					if len(words) > 0 {
						fmt.Fprintln(out, strings.Join(words, "\n"))
					}
					continue
				}

				composed, err := stringx.Compose(words, style)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, composed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&compose, "compose", "", "Join the words as snake, kebab, camel or pascal")
	return cmd
}
