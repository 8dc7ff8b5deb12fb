package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntk221/monkey/lexer"
)

func newLexCmd(a *app) *cobra.Command {
	var eval string

	cmd := &cobra.Command{
		Use:   "lex [file|-]",
		Short: "Print the token stream of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, args, eval)
			if err != nil {
				return err
			}

			n := 0
			out := cmd.OutOrStdout()
			for tok := range lexer.Tokens(src) {
				fmt.Fprintf(out, "%-15s %q\n", tok.Type, tok.Literal)
				n++
			}
			a.logger.Debug("lexed", "source", name, "tokens", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "source text to lex instead of a file")
	return cmd
}
