package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ntk221/monkey/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive read-parse-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd)
		},
	}
}

func (a *app) runREPL(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	return repl.New(a.cfg, a.highlighter(out), a.logger, out).Run()
}
