package highlight

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/ntk221/monkey/internal/config"
	"github.com/ntk221/monkey/token"
)

func colourRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		tokenType token.TokenType
		expected  Class
	}{
		{token.LET, ClassKeyword},
		{token.FUNCTION, ClassKeyword},
		{token.TRUE, ClassLiteral},
		{token.INT, ClassLiteral},
		{token.IDENT, ClassIdentifier},
		{token.PLUS_ASSIGN, ClassOperator},
		{token.EQ, ClassOperator},
		{token.LBRACE, ClassDelimiter},
		{token.ILLEGAL, ClassIllegal},
		{token.EOF, ClassNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.tokenType); got != tt.expected {
			t.Errorf("Classify(%s) = %d, want %d", tt.tokenType, got, tt.expected)
		}
	}
}

func TestSourcePreservesText(t *testing.T) {
	inputs := []string{
		"let x = 5;",
		"let add = fn(a, b) {\n\treturn a + b;\n};\n",
		"  if (x >= 10) { y } else { @ }  ",
		"",
	}

	h := New(colourRenderer(), config.Default().Theme, true)
	for _, input := range inputs {
		got := h.Source(input)
		if stripped := ansi.Strip(got); stripped != input {
			t.Errorf("stripped output differs.\nexpected=%q\ngot=%q", input, stripped)
		}
	}
}

func TestSourceAddsColour(t *testing.T) {
	h := New(colourRenderer(), config.Default().Theme, true)

	got := h.Source("let x = 5;")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", got)
	}
}

func TestDisabled(t *testing.T) {
	h := New(colourRenderer(), config.Default().Theme, false)

	input := "let x = 5;"
	if got := h.Source(input); got != input {
		t.Errorf("disabled highlighter changed source. got=%q", got)
	}
	if got := h.Error("boom"); got != "boom" {
		t.Errorf("disabled highlighter changed error. got=%q", got)
	}
}

func TestError(t *testing.T) {
	h := New(colourRenderer(), config.Default().Theme, true)

	got := h.Error("expected next token to be Identifier, got Assign instead")
	if ansi.Strip(got) != "expected next token to be Identifier, got Assign instead" {
		t.Errorf("error text changed. got=%q", ansi.Strip(got))
	}
}
