package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ntk221/monkey/internal/config"
	"github.com/ntk221/monkey/internal/highlight"
)

// app carries the state shared by every subcommand once the root has run its pre-run hook
type app struct {
	cfgFile  string
	verbose  bool
	noColour bool

	cfg    *config.Config
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "monkey",
		Short: "Tokenize and parse Monkey source",
		Long: `monkey runs the Monkey front end: a lexer and a Pratt parser that
turn source text into an abstract syntax tree.

Without a subcommand it starts the interactive REPL.

Examples:
  monkey lex -e 'let x = 5;'
  monkey parse program.mk
  echo 'a + b * c' | monkey parse`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ~/.config/monkey/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColour, "no-color", false, "disable syntax highlighting")

	root.AddCommand(
		newReplCmd(a),
		newLexCmd(a),
		newParseCmd(a),
		newVersionCmd(),
	)

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadDefault(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.noColour {
		cfg.Highlight = false
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
		}
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.logger.Debug("config loaded", "prompt", cfg.Prompt, "highlight", cfg.Highlight)
	return nil
}

// highlighter draws for w; lipgloss falls back to plain text when w is not a terminal
func (a *app) highlighter(w io.Writer) *highlight.Highlighter {
	return highlight.New(lipgloss.NewRenderer(w), a.cfg.Theme, a.cfg.Highlight)
}

// readSource returns inline source, stdin (no argument or "-"), or the named file
func readSource(cmd *cobra.Command, args []string, inline string) (src, name string, err error) {
	if inline != "" {
		return inline, "<eval>", nil
	}

	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), "<stdin>", nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("cannot read %s: %w", args[0], err)
	}
	return string(b), args[0], nil
}
