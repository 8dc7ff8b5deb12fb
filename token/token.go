package token

// TokenType はトークンの種類。値はエラーメッセージにそのまま出る名前にしておく
type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	ILLEGAL = "Illegal"    // 字句解析器が知らない文字
	EOF     = "EndOfInput" // 入力の終端

	// 識別子 + リテラル
	IDENT = "Identifier"     // add, foobar, x, y, ...
	INT   = "IntegerLiteral" // 1343456

	// 演算子
	ASSIGN   = "Assign"
	PLUS     = "Plus"
	MINUS    = "Minus"
	BANG     = "Bang"
	ASTERISK = "Asterisk"
	SLASH    = "Slash"

	PLUS_ASSIGN     = "PlusAssign"
	MINUS_ASSIGN    = "MinusAssign"
	ASTERISK_ASSIGN = "AsteriskAssign"
	SLASH_ASSIGN    = "SlashAssign"

	GT     = "Greater"
	GT_EQ  = "GreaterEqual"
	LT     = "Less"
	LT_EQ  = "LessEqual"
	NOT_EQ = "NotEqual"
	EQ     = "Equal"

	// デリミタ
	COMMA     = "Comma"
	SEMICOLON = "Semicolon"

	LPAREN = "LeftParen"
	RPAREN = "RightParen"
	LBRACE = "LeftBrace"
	RBRACE = "RightBrace"

	// キーワード
	FUNCTION = "Function"
	LET      = "Let"
	TRUE     = "True"
	FALSE    = "False"
	IF       = "If"
	ELSE     = "Else"
	RETURN   = "Return"
)

var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent は英字の並びがキーワードならそのトークン型を、そうでなければIDENTを返す
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords はキーワードのリテラルを返す。REPLの補完に使う
func Keywords() []string {
	return []string{"let", "if", "else", "fn", "true", "false", "return"}
}

func IsKeyword(t TokenType) bool {
	switch t {
	case FUNCTION, LET, TRUE, FALSE, IF, ELSE, RETURN:
		return true
	}
	return false
}

func IsOperator(t TokenType) bool {
	switch t {
	case ASSIGN, PLUS, MINUS, BANG, ASTERISK, SLASH,
		PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN,
		GT, GT_EQ, LT, LT_EQ, NOT_EQ, EQ:
		return true
	}
	return false
}

func IsDelimiter(t TokenType) bool {
	switch t {
	case COMMA, SEMICOLON, LPAREN, RPAREN, LBRACE, RBRACE:
		return true
	}
	return false
}

// IsLiteral は整数リテラルと真偽値リテラルを区別せずに判定する
func IsLiteral(t TokenType) bool {
	return t == INT || t == TRUE || t == FALSE
}
