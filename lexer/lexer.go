package lexer

import (
	"iter"
	"unicode/utf8"

	"github.com/ntk221/monkey/token"
)

// 入力の終端を表す番兵
const eof rune = -1

type Lexer struct {
	input        string
	position     int  // 入力における現在の位置(現在の文字を指し示す)
	readPosition int  // これから読み込む位置(現在の文字の次)
	ch           rune // 現在検査中の文字
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokens は新しいLexerでinputを読み切る。最後のトークンはちょうど一つのEOFになる
func Tokens(input string) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		l := New(input)
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.Type == token.EOF {
				return
			}
		}
	}
}

// 次の一文字を読んで位置を進める。終端に達したらchは番兵になる
func (l *Lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = eof
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
}

// 次の一文字を消費せずに覗き見る
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		tok = l.twoCharToken('=', token.ASSIGN, token.EQ)
	case '!':
		tok = l.twoCharToken('=', token.BANG, token.NOT_EQ)
	case '<':
		tok = l.twoCharToken('=', token.LT, token.LT_EQ)
	case '>':
		tok = l.twoCharToken('=', token.GT, token.GT_EQ)
	case '+':
		tok = l.twoCharToken('=', token.PLUS, token.PLUS_ASSIGN)
	case '-':
		tok = l.twoCharToken('=', token.MINUS, token.MINUS_ASSIGN)
	case '*':
		tok = l.twoCharToken('=', token.ASTERISK, token.ASTERISK_ASSIGN)
	case '/':
		tok = l.twoCharToken('=', token.SLASH, token.SLASH_ASSIGN)
	case ',':
		tok = newToken(token.COMMA, l.ch)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case '{':
		tok = newToken(token.LBRACE, l.ch)
	case '}':
		tok = newToken(token.RBRACE, l.ch)
	case eof:
		// 位置は進めない。以降の呼び出しもEOFを返し続ける
		return token.Token{Type: token.EOF, Literal: ""}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(literal), Literal: literal}
		} else if isDigit(l.ch) {
			return token.Token{Type: token.INT, Literal: l.readNumber()}
		}
		tok = l.readIllegal()
	}

	l.readChar()
	return tok
}

// 次の文字がsecondなら二文字のトークンとして読む。そうでなければ一文字のトークンになる
func (l *Lexer) twoCharToken(second rune, single, double token.TokenType) token.Token {
	if l.peekChar() != second {
		return newToken(single, l.ch)
	}
	ch := l.ch
	l.readChar()
	return token.Token{Type: double, Literal: string(ch) + string(l.ch)}
}

// 不正なUTF-8のバイトはその一バイトだけをリテラルにする
func (l *Lexer) readIllegal() token.Token {
	return token.Token{Type: token.ILLEGAL, Literal: l.input[l.position:l.readPosition]}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func newToken(tokenType token.TokenType, ch rune) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}
