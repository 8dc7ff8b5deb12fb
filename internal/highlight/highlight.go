// Package highlight colours monkey source text by token class.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntk221/monkey/internal/config"
	"github.com/ntk221/monkey/lexer"
	"github.com/ntk221/monkey/token"
)

// Class groups token types that share a colour
type Class int

const (
	ClassNone Class = iota
	ClassKeyword
	ClassIdentifier
	ClassLiteral
	ClassOperator
	ClassDelimiter
	ClassIllegal
)

// Classify maps a token type to its highlight class. true/false are literals.
func Classify(t token.TokenType) Class {
	switch {
	case token.IsLiteral(t):
		return ClassLiteral
	case token.IsKeyword(t):
		return ClassKeyword
	case t == token.IDENT:
		return ClassIdentifier
	case token.IsOperator(t):
		return ClassOperator
	case token.IsDelimiter(t):
		return ClassDelimiter
	case t == token.ILLEGAL:
		return ClassIllegal
	default:
		return ClassNone
	}
}

type Highlighter struct {
	enabled bool
	styles  map[Class]lipgloss.Style
	errors  lipgloss.Style
}

// New builds a Highlighter drawing with r. A disabled Highlighter returns text unchanged.
func New(r *lipgloss.Renderer, theme config.Theme, enabled bool) *Highlighter {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Highlighter{
		enabled: enabled,
		styles: map[Class]lipgloss.Style{
			ClassKeyword:    fg(theme.Keyword).Bold(true),
			ClassIdentifier: fg(theme.Identifier),
			ClassLiteral:    fg(theme.Literal),
			ClassOperator:   fg(theme.Operator),
			ClassDelimiter:  fg(theme.Delimiter),
			ClassIllegal:    fg(theme.Illegal).Underline(true),
		},
		errors: fg(theme.Error),
	}
}

// Source re-lexes src and colours each token, copying the whitespace between
// tokens through untouched.
func (h *Highlighter) Source(src string) string {
	if !h.enabled {
		return src
	}

	var out strings.Builder
	pos := 0
	for tok := range lexer.Tokens(src) {
		if tok.Type == token.EOF {
			break
		}
		// the lexer only skips whitespace, so the literal is the next non-blank text
		i := strings.Index(src[pos:], tok.Literal)
		if i < 0 {
			break
		}
		out.WriteString(src[pos : pos+i])
		out.WriteString(h.render(tok))
		pos += i + len(tok.Literal)
	}
	out.WriteString(src[pos:])

	return out.String()
}

// Error colours a diagnostic line.
func (h *Highlighter) Error(msg string) string {
	if !h.enabled {
		return msg
	}
	return h.errors.Render(msg)
}

func (h *Highlighter) render(tok token.Token) string {
	style, ok := h.styles[Classify(tok.Type)]
	if !ok {
		return tok.Literal
	}
	return style.Render(tok.Literal)
}
