// Package repl reads monkey source line by line, parses it and prints the
// canonical rendering of the program or the parser's errors.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ntk221/monkey/internal/config"
	"github.com/ntk221/monkey/internal/highlight"
	"github.com/ntk221/monkey/parser"
	"github.com/ntk221/monkey/token"
)

const banner = "Monkey front end. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit."

type REPL struct {
	cfg    *config.Config
	hl     *highlight.Highlighter
	logger *slog.Logger
	out    io.Writer
}

func New(cfg *config.Config, hl *highlight.Highlighter, logger *slog.Logger, out io.Writer) *REPL {
	return &REPL{cfg: cfg, hl: hl, logger: logger, out: out}
}

// Run drives the interactive loop on the controlling terminal until EOF or :quit.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeKeyword)

	r.readHistory(ln)
	defer r.writeHistory(ln)

	for {
		src, ok := r.read(ln)
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return nil
			}
			fmt.Fprintln(r.out, "unknown command. Type :quit to exit.")
			continue
		}

		r.Eval(src)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// Eval parses src and prints either the rendered program or every parse error.
func (r *REPL) Eval(src string) {
	p := parser.NewFromString(src)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		r.logger.Debug("parse failed", "errors", len(errs))
		fmt.Fprintln(r.out, r.hl.Error("Invalid statement"))
		for _, msg := range errs {
			fmt.Fprintln(r.out, "\t"+r.hl.Error(msg))
		}
		return
	}
	if program == nil {
		return
	}

	r.logger.Debug("parsed", "statements", len(program.Statements))
	fmt.Fprintln(r.out, r.hl.Source(program.String()))
}

// read collects lines until the accumulated source no longer stops short at
// end of input. ok is false on EOF.
func (r *REPL) read(ln *liner.State) (src string, ok bool) {
	var b strings.Builder

	for {
		prompt := r.cfg.Prompt
		if b.Len() > 0 {
			prompt = r.cfg.ContinuePrompt
		}

		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			return "", false
		case errors.Is(err, liner.ErrPromptAborted):
			b.Reset()
			continue
		case err != nil:
			r.logger.Warn("reading input", "err", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !NeedsMore(b.String()) {
			return b.String(), true
		}
	}
}

// NeedsMore reports whether src only fails to parse because it ends too early,
// e.g. an open block or a let statement still missing its semicolon.
func NeedsMore(src string) bool {
	p := parser.NewFromString(src)
	p.ParseProgram()

	errs := p.Errors()
	if len(errs) == 0 {
		return false
	}
	for _, msg := range errs {
		if !strings.Contains(msg, token.EOF) {
			return false
		}
	}
	return true
}

func completeKeyword(line string) []string {
	start := strings.LastIndexAny(line, " \t(){};,") + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}

	var out []string
	for _, kw := range token.Keywords() {
		if strings.HasPrefix(kw, prefix) && kw != prefix {
			out = append(out, line[:start]+kw)
		}
	}
	return out
}

func (r *REPL) readHistory(ln *liner.State) {
	if r.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Open(r.cfg.HistoryFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("opening history", "path", r.cfg.HistoryFile, "err", err)
		}
		return
	}
	defer f.Close()

	if _, err := ln.ReadHistory(f); err != nil {
		r.logger.Warn("reading history", "path", r.cfg.HistoryFile, "err", err)
	}
}

func (r *REPL) writeHistory(ln *liner.State) {
	if r.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Create(r.cfg.HistoryFile)
	if err != nil {
		r.logger.Warn("creating history", "path", r.cfg.HistoryFile, "err", err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		r.logger.Warn("writing history", "path", r.cfg.HistoryFile, "err", err)
	}
}
