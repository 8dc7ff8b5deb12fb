package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ntk221/monkey/ast"
	"github.com/ntk221/monkey/parser"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		eval  string
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a source file and print its canonical form",
		Long: `Parses the source and prints every statement in its canonical,
fully parenthesized form. Parse errors are printed to stderr and make the
command exit non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, args, eval)
			if err != nil {
				return err
			}

			p := parser.NewFromString(src)
			program := p.ParseProgram()

			if err := p.Err(); err != nil {
				hl := a.highlighter(cmd.ErrOrStderr())
				for _, msg := range p.Errors() {
					fmt.Fprintln(cmd.ErrOrStderr(), hl.Error(name+": "+msg))
				}
				return fmt.Errorf("%s: %d parse error(s)", name, len(p.Errors()))
			}
			if program == nil {
				a.logger.Debug("nothing to parse", "source", name)
				return nil
			}

			out := cmd.OutOrStdout()
			hl := a.highlighter(out)
			for _, stmt := range program.Statements {
				fmt.Fprintln(out, hl.Source(stmt.String()))
			}

			if stats {
				fmt.Fprint(out, nodeStats(program))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "source text to parse instead of a file")
	cmd.Flags().BoolVar(&stats, "stats", false, "print a count of AST nodes by kind")
	return cmd
}

// nodeStats counts nodes by type, sorted by type name
func nodeStats(program *ast.Program) string {
	counts := map[string]int{}
	total := 0
	ast.Walk(program, func(n ast.Node) bool {
		counts[strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")]++
		total++
		return true
	})

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var b strings.Builder
	fmt.Fprintf(&b, "statements: %d\nnodes: %d\n", len(program.Statements), total)
	for _, k := range kinds {
		fmt.Fprintf(&b, "  %-20s %d\n", k, counts[k])
	}
	return b.String()
}
