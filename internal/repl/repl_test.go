package repl

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntk221/monkey/internal/config"
	"github.com/ntk221/monkey/internal/highlight"
)

func newTestREPL(out io.Writer) *REPL {
	cfg := config.Default()
	hl := highlight.New(lipgloss.NewRenderer(io.Discard), cfg.Theme, false)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, hl, logger, out)
}

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let x = 1 + 2 * 3;", "let x = (1 + (2 * 3));\n"},
		{"-a * b", "((-a) * b);\n"},
		{"", ""},
		{
			"let = 5;",
			"Invalid statement\n" +
				"\texpected next token to be Identifier, got Assign instead\n" +
				"\tno prefix parse function for Assign found\n",
		},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		newTestREPL(&out).Eval(tt.input)

		if out.String() != tt.expected {
			t.Errorf("Eval(%q) wrong.\nexpected=%q\ngot=%q", tt.input, tt.expected, out.String())
		}
	}
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"let x = 5", true},
		{"if (x) {", true},
		{"5 +", true},
		{"fn(a, b) { a + b", true},
		{"let x = 5;", false},
		{"x", false},
		{"", false},
		{"let = 5;", false},
		{"@", false},
	}

	for _, tt := range tests {
		if got := NeedsMore(tt.input); got != tt.expected {
			t.Errorf("NeedsMore(%q) = %t, want %t", tt.input, got, tt.expected)
		}
	}
}

func TestCompleteKeyword(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"le", []string{"let"}},
		{"let f = f", []string{"let f = fn", "let f = false"}},
		{"if (t", []string{"if (true"}},
		{"let", nil},
		{"", nil},
		{"x ", nil},
	}

	for _, tt := range tests {
		got := completeKeyword(tt.line)
		if len(got) != len(tt.expected) {
			t.Errorf("completeKeyword(%q) = %q, want %q", tt.line, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("completeKeyword(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.expected[i])
			}
		}
	}
}
